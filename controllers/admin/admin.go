package adminController

import (
	"log"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"
	"learnlink/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists every registered user for the admin dashboard
func GetAllUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Order("id asc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to retrieve users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// DeleteUser soft deletes a user account
func DeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&user).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// RunSweep triggers the completion sweep on demand. The scheduled job covers
// the normal case; this endpoint exists for external cron setups and ops use.
func RunSweep(c *fiber.Ctx) error {
	updated, err := utils.RunCompletionSweep(database.Database.Db)
	if err != nil {
		log.Printf("Error running completion sweep: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to run completion sweep!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion sweep finished!", fiber.Map{
		"completed": updated,
	})
}
