package courseValidator

import (
	"strconv"
	"strings"

	"learnlink/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Category     string `json:"category" validate:"required"`
	Subcategory  string `json:"subcategory" validate:"required"`
	Level        string `json:"level" validate:"required"`
	MaxStudents  int    `json:"maxStudents" validate:"required,min=1"`
	TutoringType string `json:"tutoringType" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	MeetingLink  string `json:"meetingLink" validate:"required,url"`
	Description  string `json:"description" validate:"required,min=5"`
}

// CreateCourse validates the course publication body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :courseId path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseList validates pagination and filter query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		errors := make(map[string]string)
		if page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if limit < 1 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
