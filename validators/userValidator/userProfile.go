package userValidator

import (
	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest uses pointers so absent fields stay untouched.
// Interests, when present, replace the stored set wholesale.
type UpdateProfileRequest struct {
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Password  *string   `json:"password"`
	Interests *[]string `json:"interests"`
	Avatar    *string   `json:"avatar"`
	AvatarURL *string   `json:"avatarUrl"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.Password != nil && len(*reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
