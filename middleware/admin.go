package middleware

import (
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAdmin returns a middleware that allows only users whose stored
// role is ADMIN. The role comes from the users table, never from the
// token, so a demoted admin loses access on their next request.
func RequireAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No token")
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
			}
			return ErrorResponse(c, fiber.StatusInternalServerError, "Server error while checking permissions")
		}

		if user.Role != "ADMIN" {
			return ErrorResponse(c, fiber.StatusForbidden, "Access denied! Admin only.")
		}

		c.Locals("role", user.Role)
		return c.Next()
	}
}
