package utils

import (
	"testing"
	"time"

	"learnlink/database"
	"learnlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSweepDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:sweeptest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)

	// Fresh tables per test; the shared-cache db survives between tests
	require.NoError(t, db.Exec("DELETE FROM course_enrollment").Error)
	require.NoError(t, db.Exec("DELETE FROM courses").Error)
	require.NoError(t, db.Exec("DELETE FROM users").Error)

	return db
}

func seedEnrollment(t *testing.T, db *gorm.DB, courseDate string, status models.EnrollmentStatus) models.Enrollment {
	t.Helper()

	user := models.User{Username: "user-" + courseDate + string(status), Email: "u@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{
		Title:        "Course",
		Category:     "Coding",
		Subcategory:  "Go",
		Level:        "Amateur",
		MaxStudents:  5,
		TutoringType: "Online",
		Date:         courseDate,
		Time:         "10:00",
		MeetingLink:  "http://zoom.example.com/m",
		UserID:       user.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	enrollment := models.Enrollment{CourseID: course.ID, UserID: user.ID, Status: status}
	require.NoError(t, db.Create(&enrollment).Error)

	return enrollment
}

func TestCompletionSweepOnlyTouchesPastBooked(t *testing.T) {
	db := setupSweepDb(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	pastBooked := seedEnrollment(t, db, yesterday, models.EnrollmentBooked)
	pastRequested := seedEnrollment(t, db, yesterday, models.EnrollmentRequested)
	futureBooked := seedEnrollment(t, db, tomorrow, models.EnrollmentBooked)

	updated, err := RunCompletionSweep(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	require.NoError(t, db.First(&pastBooked, pastBooked.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, pastBooked.Status)

	require.NoError(t, db.First(&pastRequested, pastRequested.ID).Error)
	assert.Equal(t, models.EnrollmentRequested, pastRequested.Status)

	require.NoError(t, db.First(&futureBooked, futureBooked.ID).Error)
	assert.Equal(t, models.EnrollmentBooked, futureBooked.Status)
}

func TestCompletionSweepIsIdempotent(t *testing.T) {
	db := setupSweepDb(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	enrollment := seedEnrollment(t, db, yesterday, models.EnrollmentBooked)

	updated, err := RunCompletionSweep(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	// Re-running the sweep changes nothing
	updated, err = RunCompletionSweep(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	require.NoError(t, db.First(&enrollment, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, enrollment.Status)
}
