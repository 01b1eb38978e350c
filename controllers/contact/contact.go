package contactController

import (
	"log"
	"strings"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactRequest persists a message from the public contact form
func SubmitContactRequest(c *fiber.Ctx) error {
	reqData := new(struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if strings.TrimSpace(reqData.Name) == "" {
		errors["name"] = "Name is required!"
	}
	if strings.TrimSpace(reqData.Email) == "" {
		errors["email"] = "Email is required!"
	}
	if strings.TrimSpace(reqData.Message) == "" {
		errors["message"] = "Message is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	request := models.ContactRequest{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		log.Printf("Error saving contact request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit contact request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Contact request submitted successfully!", request)
}

// GetContactRequests lists submitted contact requests for admins
func GetContactRequests(c *fiber.Ctx) error {
	var requests []models.ContactRequest
	if err := database.Database.Db.Order("created_at desc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contact requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact requests fetched successfully!", requests)
}
