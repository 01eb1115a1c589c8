package authController

import (
	"crev/config"
	"crev/database"
	"crev/middleware"
	"crev/models"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		AllowedEmailDomain: "seas.upenn.edu",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LoginTracking{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/auth/session", middleware.JWTMiddleware, GetSession)
	app.Post("/auth/logout", middleware.JWTMiddleware, Logout)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) models.User {
	t.Helper()
	user := models.User{Email: email, Name: name, Provider: "google"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func request(t *testing.T, app *fiber.App, method, path, auth string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestGetSession(t *testing.T) {
	app, db := setupTest(t)
	user := seedUser(t, db, "x@seas.upenn.edu", "Test User")

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)

	code, body := request(t, app, "GET", "/auth/session", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, code)

	var resp struct {
		Data struct {
			UserID uint   `json:"userId"`
			Email  string `json:"email"`
			Name   string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, user.ID, resp.Data.UserID)
	assert.Equal(t, "x@seas.upenn.edu", resp.Data.Email)
	assert.Equal(t, "Test User", resp.Data.Name)
}

func TestGetSession_Unauthenticated(t *testing.T) {
	app, _ := setupTest(t)

	code, _ := request(t, app, "GET", "/auth/session", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestGetSession_WrongDomain(t *testing.T) {
	app, db := setupTest(t)
	outsider := seedUser(t, db, "x@gmail.com", "Outside User")

	token, err := middleware.GenerateJWT(outsider.ID, outsider.Name, outsider.Email)
	require.NoError(t, err)

	code, _ := request(t, app, "GET", "/auth/session", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestGetSession_DeletedUser(t *testing.T) {
	app, db := setupTest(t)
	user := seedUser(t, db, "x@seas.upenn.edu", "Test User")

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)

	require.NoError(t, db.Model(&user).Update("is_deleted", true).Error)

	code, _ := request(t, app, "GET", "/auth/session", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestLogout(t *testing.T) {
	app, db := setupTest(t)
	user := seedUser(t, db, "x@seas.upenn.edu", "Test User")

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)

	code, _ := request(t, app, "POST", "/auth/logout", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, code)

	var tracking models.LoginTracking
	require.NoError(t, db.Where("user_id = ? AND event = ?", user.ID, "logout").First(&tracking).Error)
	assert.Equal(t, user.Email, tracking.Email)
}
