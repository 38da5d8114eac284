package authRoutes

import (
	authController "skillup/controllers/auth"
	authValidator "skillup/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, auth *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), auth.Signup)
	authGroup.Post("/login", authValidator.Login(), auth.Login)
}
