package adminRoutes

import (
	adminController "learnlink/controllers/admin"
	contactController "learnlink/controllers/contact"
	"learnlink/middleware"
	"learnlink/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin-only routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", adminController.GetAllUsers)
	adminGroup.Delete("/users/:userId", adminController.DeleteUser)
	adminGroup.Get("/contact-requests", contactController.GetContactRequests)
	adminGroup.Post("/sweep", adminController.RunSweep)
}
