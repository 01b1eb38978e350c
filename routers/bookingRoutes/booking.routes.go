package bookingRoutes

import (
	controllers "learnlink/controllers/course"
	"learnlink/middleware"
	"learnlink/models"
	validators "learnlink/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupBookingRoutes sets up the enrollment/booking workflow routes
func SetupBookingRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Student side
	apiGroup.Post("/book/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestBooking)
	apiGroup.Get("/student/bookings", middleware.JWTMiddleware, controllers.GetStudentBookings)

	// Tutor side
	apiGroup.Post("/enrollments/:enrollmentId/accept", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor, models.RoleAdmin), validators.EnrollmentID(), controllers.AcceptBooking)
	apiGroup.Post("/enrollments/:enrollmentId/reject", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor, models.RoleAdmin), validators.EnrollmentID(), controllers.RejectBooking)
	apiGroup.Get("/tutors/pending-bookings", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor, models.RoleAdmin), controllers.GetPendingBookings)
}
