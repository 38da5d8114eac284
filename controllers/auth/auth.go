package authController

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"skillup/config"
	"skillup/middleware"
	"skillup/models"
	"skillup/utils"
	authValidator "skillup/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Controller struct {
	db     *gorm.DB
	jwt    *middleware.JWT
	cfg    *config.Config
	mailer *utils.Mailer
}

func New(db *gorm.DB, jwt *middleware.JWT, cfg *config.Config, mailer *utils.Mailer) *Controller {
	return &Controller{db: db, jwt: jwt, cfg: cfg, mailer: mailer}
}

func (ct *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	// Requesting the admin role is the one check that happens before an
	// account exists: it is gated on a server-held secret.
	role := "USER"
	if strings.EqualFold(reqData.Role, "ADMIN") {
		if reqData.AdminSecret != ct.cfg.AdminSecret {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "Invalid admin secret")
		}
		role = "ADMIN"
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ct.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	interests := reqData.Interests
	if interests == nil {
		interests = []string{}
	}
	interestsJSON, err := json.Marshal(interests)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	newUser := models.User{
		Name:      reqData.Name,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Role:      role,
		Bio:       reqData.Bio,
		Avatar:    reqData.Avatar,
		Interests: datatypes.JSON(interestsJSON),
	}

	// The unique index on email is the arbiter: two concurrent signups
	// with the same address leave exactly one row.
	if err := ct.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up user")
	}

	go ct.mailer.SendWelcome(newUser.Name, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func (ct *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var user models.User
	result := ct.db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)

	// Same message for unknown email and wrong password, so callers
	// cannot enumerate accounts.
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ct.jwt.Generate(user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}
