package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillup/config"
	userController "skillup/controllers/userControllers"
	"skillup/middleware"
	"skillup/models"
	"skillup/routers/userRoutes"
	"skillup/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *middleware.JWT) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
	media, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	jwt := middleware.NewJWT(cfg.JWTKey)
	app := fiber.New()
	userRoutes.SetupUserRoutes(app, jwt, userController.New(db, cfg, media))

	return app, db, jwt
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Name:      "Ada",
		Email:     "ada@x.com",
		Password:  "hashed",
		Bio:       "original bio",
		Interests: datatypes.JSON([]byte(`["go","sql"]`)),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func putProfile(t *testing.T, app *fiber.App, token string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/user/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestUpdateProfileBioOnly(t *testing.T) {
	app, db, jwt := setupApp(t)
	user := seedUser(t, db)

	token, err := jwt.Generate(user.ID, user.Email)
	require.NoError(t, err)

	resp := putProfile(t, app, token, fiber.Map{"bio": "x"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "x", fresh.Bio)
	assert.Equal(t, "Ada", fresh.Name)
	assert.Equal(t, "ada@x.com", fresh.Email)
	assert.Equal(t, "hashed", fresh.Password)
	assert.JSONEq(t, `["go","sql"]`, string(fresh.Interests))
}

func TestUpdateProfileInterestsReplacedWholesale(t *testing.T) {
	app, db, jwt := setupApp(t)
	user := seedUser(t, db)

	token, err := jwt.Generate(user.ID, user.Email)
	require.NoError(t, err)

	resp := putProfile(t, app, token, fiber.Map{"interests": []string{"ml"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.JSONEq(t, `["ml"]`, string(fresh.Interests))
}

func TestUpdateProfilePasswordRehashed(t *testing.T) {
	app, db, jwt := setupApp(t)
	user := seedUser(t, db)

	token, err := jwt.Generate(user.ID, user.Email)
	require.NoError(t, err)

	resp := putProfile(t, app, token, fiber.Map{"password": "newsecret"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.NotEqual(t, "newsecret", fresh.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(fresh.Password), []byte("newsecret")))
}

func TestUpdateProfileWeakPasswordRejected(t *testing.T) {
	app, db, jwt := setupApp(t)
	user := seedUser(t, db)

	token, err := jwt.Generate(user.ID, user.Email)
	require.NoError(t, err)

	resp := putProfile(t, app, token, fiber.Map{"password": "123"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetProfileRequiresToken(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "No token", body["error"])
}
