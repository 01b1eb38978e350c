package controllers_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"learnlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourseBody() map[string]interface{} {
	return map[string]interface{}{
		"title":        "React Fundamentals",
		"category":     "Coding",
		"subcategory":  "React",
		"level":        "Intermediate",
		"maxStudents":  15,
		"tutoringType": "Online",
		"date":         "2099-02-05",
		"time":         "14:00",
		"meetingLink":  "http://zoom.example.com/meeting2",
		"description":  "Components, hooks and state management.",
	}
}

func TestCreateCourseCreatesAvailabilityRow(t *testing.T) {
	app, db := setupTestApp(t)

	_, tutorToken := createUser(t, db, "tutor1", models.RoleTutor)

	resp, body := doJSON(t, app, "POST", "/api/courses/", tutorToken, validCourseBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	courseID := uint(data["ID"].(float64))

	var availability models.CourseAvailability
	require.NoError(t, db.Where("course_id = ?", courseID).First(&availability).Error)
	assert.Equal(t, 15, availability.MaxStudents)
	assert.Equal(t, 0, availability.ActualStudents)
}

func TestCreateCourseValidatesRequiredFields(t *testing.T) {
	app, db := setupTestApp(t)

	_, tutorToken := createUser(t, db, "tutor1", models.RoleTutor)

	payload := validCourseBody()
	delete(payload, "title")
	delete(payload, "meetingLink")

	resp, _ := doJSON(t, app, "POST", "/api/courses/", tutorToken, payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateCourseRequiresTutorRole(t *testing.T) {
	app, db := setupTestApp(t)

	_, studentToken := createUser(t, db, "student1", models.RoleStudent)

	resp, _ := doJSON(t, app, "POST", "/api/courses/", studentToken, validCourseBody())
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteCourseOwnerOnly(t *testing.T) {
	app, db := setupTestApp(t)

	tutor, tutorToken := createUser(t, db, "tutor1", models.RoleTutor)
	_, strangerToken := createUser(t, db, "tutor2", models.RoleTutor)
	course := createCourse(t, db, tutor.ID, 5, "2099-01-20")

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", course.ID), strangerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", course.ID), tutorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Deleted courses disappear from detail lookups
	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/courses/%d", course.ID), tutorToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFavoriteToggleIsSelfInverse(t *testing.T) {
	app, db := setupTestApp(t)

	tutor, _ := createUser(t, db, "tutor1", models.RoleTutor)
	_, studentToken := createUser(t, db, "student1", models.RoleStudent)
	course := createCourse(t, db, tutor.ID, 5, "2099-01-20")

	path := fmt.Sprintf("/api/courses/%d/favorite", course.ID)

	resp, body := doJSON(t, app, "POST", path, studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["favorited"])

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	resp, body = doJSON(t, app, "POST", path, studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["data"].(map[string]interface{})["favorited"])

	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Odd number of toggles leaves exactly one row
	resp, body = doJSON(t, app, "POST", path, studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["favorited"])

	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteToggleConcurrentRequests(t *testing.T) {
	app, db := setupTestApp(t)

	tutor, _ := createUser(t, db, "tutor1", models.RoleTutor)
	_, studentToken := createUser(t, db, "student1", models.RoleStudent)
	course := createCourse(t, db, tutor.ID, 5, "2099-01-20")

	path := fmt.Sprintf("/api/courses/%d/favorite", course.ID)

	const toggles = 4
	var wg sync.WaitGroup
	results := make([]int, toggles)
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, _ := doJSON(t, app, "POST", path, studentToken, nil)
			results[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	// Racing toggles never surface the unique index as an error
	for _, code := range results {
		assert.Equal(t, http.StatusOK, code)
	}

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.LessOrEqual(t, count, int64(1))
}

func TestReviewUpsertKeepsSingleRow(t *testing.T) {
	app, db := setupTestApp(t)

	tutor, _ := createUser(t, db, "tutor1", models.RoleTutor)
	_, studentToken := createUser(t, db, "student1", models.RoleStudent)
	course := createCourse(t, db, tutor.ID, 5, "2099-01-20")

	path := fmt.Sprintf("/api/courses/%d/review", course.ID)

	resp, _ := doJSON(t, app, "POST", path, studentToken, map[string]interface{}{"rating": 4, "comment": "Great course"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", path, studentToken, map[string]interface{}{"rating": 2, "comment": "Changed my mind"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []models.Review
	require.NoError(t, db.Where("course_id = ?", course.ID).Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, 2, reviews[0].Rating)
	assert.Equal(t, "Changed my mind", reviews[0].Comment)
}

func TestReviewRejectsOutOfRangeRating(t *testing.T) {
	app, db := setupTestApp(t)

	tutor, _ := createUser(t, db, "tutor1", models.RoleTutor)
	_, studentToken := createUser(t, db, "student1", models.RoleStudent)
	course := createCourse(t, db, tutor.ID, 5, "2099-01-20")

	path := fmt.Sprintf("/api/courses/%d/review", course.ID)

	for _, rating := range []int{0, 6, -1} {
		resp, _ := doJSON(t, app, "POST", path, studentToken, map[string]interface{}{"rating": rating})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
