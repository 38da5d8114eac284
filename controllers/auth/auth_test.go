package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillup/config"
	authController "skillup/controllers/auth"
	userController "skillup/controllers/userControllers"
	"skillup/middleware"
	"skillup/models"
	"skillup/routers/authRoutes"
	"skillup/routers/userRoutes"
	"skillup/storage"
	"skillup/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{
		JWTKey:      "test-secret",
		SaltRound:   bcrypt.MinCost,
		AdminSecret: "super-secret",
	}

	media, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	jwt := middleware.NewJWT(cfg.JWTKey)
	mailer := utils.NewMailer("", "noreply@test")

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(db, jwt, cfg, mailer))
	userRoutes.SetupUserRoutes(app, jwt, userController.New(db, cfg, media))

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestSignupWeakPassword(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "short@x.com",
		"password": "12345",
		"name":     "Shorty",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "no account row may exist after a rejected signup")
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "dup@x.com",
		"password": "secret1",
		"name":     "First",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "dup@x.com",
		"password": "secret2",
		"name":     "Second",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "dup@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSignupAdminSecret(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":       "admin@x.com",
		"password":    "secret1",
		"name":        "Admin",
		"role":        "ADMIN",
		"adminSecret": "wrong",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, app, "/auth/signup", fiber.Map{
		"email":       "admin@x.com",
		"password":    "secret1",
		"name":        "Admin",
		"role":        "ADMIN",
		"adminSecret": "super-secret",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "admin@x.com").First(&user).Error)
	assert.Equal(t, "ADMIN", user.Role)
}

func TestSignupTooManyInterests(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":     "tags@x.com",
		"password":  "secret1",
		"name":      "Tags",
		"interests": []string{"go", "sql", "http"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "user@x.com",
		"password": "secret1",
		"name":     "User",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unknown email and wrong password must be indistinguishable
	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "nobody@x.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	unknownBody := decodeBody(t, resp)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "user@x.com",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	wrongBody := decodeBody(t, resp)

	assert.Equal(t, unknownBody["error"], wrongBody["error"])
	assert.Equal(t, "Invalid credentials", wrongBody["error"])
}

func TestSignupLoginProfileScenario(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "a@x.com",
		"password": "secret1",
		"name":     "A",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	profile := body["data"].(map[string]interface{})
	assert.Equal(t, "a@x.com", profile["email"])
	assert.Equal(t, "A", profile["name"])
	assert.Equal(t, []interface{}{}, profile["interests"])
}
