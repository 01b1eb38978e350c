package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"learnlink/config"
	"learnlink/database"
	authRoutes "learnlink/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)

	// The shared-cache db outlives a single run; start every test empty
	require.NoError(t, db.Exec("DELETE FROM users").Error)

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	return resp, decoded
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupAuthApp(t)

	resp, body := postJSON(t, app, "/api/register", map[string]interface{}{
		"username":  "camilla",
		"email":     "camilla@example.com",
		"password":  "student12345",
		"role":      "student",
		"birthDate": "2000-01-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "camilla", user["username"])
	assert.Equal(t, "student", user["role"])

	resp, body = postJSON(t, app, "/api/login", map[string]interface{}{
		"username": "camilla",
		"password": "student12345",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["data"].(map[string]interface{})["token"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	app := setupAuthApp(t)

	payload := map[string]interface{}{
		"username": "heinz",
		"email":    "heinz@example.com",
		"password": "password123",
		"role":     "tutor",
	}

	resp, _ := postJSON(t, app, "/api/register", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/register", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterValidatesInput(t *testing.T) {
	app := setupAuthApp(t)

	// Short password
	resp, _ := postJSON(t, app, "/api/register", map[string]interface{}{
		"username": "franz",
		"email":    "franz@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Bad email
	resp, _ = postJSON(t, app, "/api/register", map[string]interface{}{
		"username": "franz",
		"email":    "not-an-email",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown role
	resp, _ = postJSON(t, app, "/api/register", map[string]interface{}{
		"username": "franz",
		"email":    "franz@example.com",
		"password": "password123",
		"role":     "superuser",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/api/register", map[string]interface{}{
		"username": "viktoria",
		"email":    "viktoria@example.com",
		"password": "student12345",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/login", map[string]interface{}{
		"username": "viktoria",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
