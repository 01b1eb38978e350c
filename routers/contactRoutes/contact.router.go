package contactRoutes

import (
	contactController "learnlink/controllers/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes sets up the public contact form route
func SetupContactRoutes(app *fiber.App) {
	app.Post("/api/contact", contactController.SubmitContactRequest)
}
