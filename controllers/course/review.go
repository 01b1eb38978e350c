package controllers

import (
	"log"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertReview creates or refreshes the user's review for a course. At most
// one review per (user, course); a repeat submission replaces the old one.
func UpsertReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var review models.Review
	err := db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&review).Error
	if err == nil {
		review.Rating = reqData.Rating
		review.Comment = reqData.Comment
		if err := db.Save(&review).Error; err != nil {
			log.Printf("Error updating review: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
	}

	review = models.Review{
		CourseID: uint(courseID),
		UserID:   userID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// GetCourseReviews returns all reviews for a course with the average rating
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []models.Review
	if err := db.Where("course_id = ?", courseID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username")
		}).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type reviewResponse struct {
		models.Review
		ReviewerName string `json:"reviewerName"`
	}

	var average float64
	response := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		average += float64(r.Rating)
		response = append(response, reviewResponse{
			Review:       r,
			ReviewerName: r.User.Username,
		})
	}
	if len(reviews) > 0 {
		average /= float64(len(reviews))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews":       response,
		"averageRating": average,
	})
}
