package courseValidator

import (
	"strconv"
	"strings"

	"learnlink/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentID validates the :enrollmentId path parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("enrollmentId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		enrollmentID, err := strconv.Atoi(idStr)
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
