package controllers

import (
	"log"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"
	courseValidator "learnlink/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse publishes a new course for the authenticated tutor. The course
// row and its availability row are written in one transaction so a failed
// availability insert can never leave an orphan course behind.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Category:     reqData.Category,
		Subcategory:  reqData.Subcategory,
		Level:        reqData.Level,
		MaxStudents:  reqData.MaxStudents,
		TutoringType: reqData.TutoringType,
		Date:         reqData.Date,
		Time:         reqData.Time,
		MeetingLink:  reqData.MeetingLink,
		Description:  reqData.Description,
		UserID:       userID,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		availability := models.CourseAvailability{
			CourseID:       course.ID,
			MaxStudents:    course.MaxStudents,
			ActualStudents: 0,
		}
		return tx.Create(&availability).Error
	})
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists courses with pagination and optional category/level filters
func GetAllCourses(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Course{}).Where("is_deleted = ?", false)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.Order("date asc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one course joined with its availability and tutor name
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Preload("User").Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var availability models.CourseAvailability
	if err := db.Where("course_id = ?", course.ID).First(&availability).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course availability not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":         course,
		"tutorName":      course.User.Username,
		"maxStudents":    availability.MaxStudents,
		"actualStudents": availability.ActualStudents,
	})
}

// DeleteCourse soft deletes a course. Only the owning tutor or an admin may delete.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != userID && role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this course!", nil)
	}

	if err := db.Model(&course).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
