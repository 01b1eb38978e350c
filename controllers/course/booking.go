package controllers

import (
	"errors"
	"log"

	"learnlink/database"
	"learnlink/middleware"
	"learnlink/models"
	"learnlink/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errAlreadyHandled = errors.New("enrollment already handled")
	errCourseFull     = errors.New("course full")
)

// RequestBooking creates a REQUESTED enrollment for the authenticated user.
// Capacity is not checked here; seats are only claimed at acceptance.
func RequestBooking(c *fiber.Ctx) error {
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

	// One enrollment per (course, user), whatever its status
	var existing models.Enrollment
	if err := db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already requested or booked this course!", nil)
	}

	enrollment := models.Enrollment{
		CourseID:  uint(courseID),
		UserID:    userID,
		Status:    models.EnrollmentRequested,
		Reference: uuid.NewString(),
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already requested or booked this course!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request booking!", nil)
	}

	go utils.NotifyBookingEvent("booking.requested", enrollment.ID, enrollment.CourseID, enrollment.UserID, enrollment.Reference)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking requested successfully!", enrollment)
}

// AcceptBooking books a REQUESTED enrollment on behalf of the owning tutor.
// The seat claim is a single guarded update inside a transaction, so two
// racing accepts can never push actual_students past max_students, and a
// second accept of the same enrollment cannot double-increment the counter.
func AcceptBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not the tutor of this course!", nil)
	}

	var availability models.CourseAvailability
	if err := db.Where("course_id = ?", course.ID).First(&availability).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course availability not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Enrollment{}).
			Where("id = ? AND status = ?", enrollment.ID, models.EnrollmentRequested).
			Update("status", models.EnrollmentBooked)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errAlreadyHandled
		}

		result = tx.Model(&models.CourseAvailability{}).
			Where("course_id = ? AND actual_students < max_students", course.ID).
			UpdateColumn("actual_students", gorm.Expr("actual_students + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errCourseFull
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errCourseFull):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is already full!", nil)
		case errors.Is(err, errAlreadyHandled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment has already been processed!", nil)
		default:
			log.Printf("Error accepting enrollment %d: %v", enrollment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept booking!", nil)
		}
	}

	var student models.User
	if err := db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendBookingAcceptedEmail(student.Email, student.Username, course.Title, course.Date, course.Time, course.MeetingLink)
	}
	go utils.NotifyBookingEvent("booking.accepted", enrollment.ID, course.ID, enrollment.UserID, enrollment.Reference)

	enrollment.Status = models.EnrollmentBooked

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking accepted successfully!", enrollment)
}

// RejectBooking rejects a REQUESTED enrollment. No seat was claimed yet, so
// the availability counter is untouched.
func RejectBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not the tutor of this course!", nil)
	}

	result := db.Model(&models.Enrollment{}).
		Where("id = ? AND status = ?", enrollment.ID, models.EnrollmentRequested).
		Update("status", models.EnrollmentRejected)
	if result.Error != nil {
		log.Printf("Error rejecting enrollment %d: %v", enrollment.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject booking!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment has already been processed!", nil)
	}

	var student models.User
	if err := db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendBookingRejectedEmail(student.Email, student.Username, course.Title)
	}
	go utils.NotifyBookingEvent("booking.rejected", enrollment.ID, course.ID, enrollment.UserID, enrollment.Reference)

	enrollment.Status = models.EnrollmentRejected

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking rejected successfully!", enrollment)
}

// GetPendingBookings lists REQUESTED enrollments across the tutor's courses
func GetPendingBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.
		Select("course_enrollment.*").
		Joins("JOIN courses ON courses.id = course_enrollment.course_id").
		Where("courses.user_id = ? AND course_enrollment.status = ?", userID, models.EnrollmentRequested).
		Preload("Course").
		Preload("User").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending bookings!", nil)
	}

	type pendingBooking struct {
		models.Enrollment
		CourseTitle string `json:"courseTitle"`
		StudentName string `json:"studentName"`
	}

	response := make([]pendingBooking, 0, len(enrollments))
	for _, e := range enrollments {
		response = append(response, pendingBooking{
			Enrollment:  e,
			CourseTitle: e.Course.Title,
			StudentName: e.User.Username,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending bookings fetched successfully!", response)
}

// GetStudentBookings lists the requesting user's enrollments joined with course details
func GetStudentBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	type studentBooking struct {
		models.Enrollment
		CourseTitle string `json:"courseTitle"`
		CourseDate  string `json:"courseDate"`
		CourseTime  string `json:"courseTime"`
		MeetingLink string `json:"meetingLink"`
	}

	response := make([]studentBooking, 0, len(enrollments))
	for _, e := range enrollments {
		response = append(response, studentBooking{
			Enrollment:  e,
			CourseTitle: e.Course.Title,
			CourseDate:  e.Course.Date,
			CourseTime:  e.Course.Time,
			MeetingLink: e.Course.MeetingLink,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched successfully!", response)
}
