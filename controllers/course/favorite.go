package controllers

import (
	"errors"
	"log"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ToggleFavorite flips the bookmark state for (user, course) and returns the
// resulting state.
func ToggleFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var favorite models.Favorite
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&favorite).Error
	if err == nil {
		if err := db.Delete(&favorite).Error; err != nil {
			log.Printf("Error removing favorite: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update favorite!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorite removed!", fiber.Map{"favorited": false})
	}

	favorite = models.Favorite{
		UserID:   userID,
		CourseID: uint(courseID),
	}
	if err := db.Create(&favorite).Error; err != nil {
		// A concurrent toggle may win the insert between the check and here;
		// the bookmark is on either way
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorite added!", fiber.Map{"favorited": true})
		}
		log.Printf("Error adding favorite: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update favorite!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorite added!", fiber.Map{"favorited": true})
}

// GetFavorites lists the requesting user's favorited courses
func GetFavorites(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []models.Course
	if err := db.
		Select("courses.*").
		Joins("JOIN favorites ON favorites.course_id = courses.id").
		Where("favorites.user_id = ? AND courses.is_deleted = ?", userID, false).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch favorites!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorites fetched successfully!", courses)
}
