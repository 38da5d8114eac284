package userRoutes

import (
	userController "skillup/controllers/userControllers"
	"skillup/middleware"
	userValidator "skillup/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, jwt *middleware.JWT, user *userController.Controller) {
	app.Get("/profile", jwt.Protected(), user.GetProfile)
	app.Put("/api/user/profile", jwt.Protected(), userValidator.UpdateProfile(), user.UpdateProfile)
}
