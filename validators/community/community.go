package communityValidator

import (
	"strconv"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreatePostRequest struct {
	Content string `json:"content"`
}

type AwardBadgeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateNotificationRequest struct {
	UserID uint   `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePostRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Content is required!",
			})
		}

		c.Locals("validatedPost", reqData)
		return c.Next()
	}
}

func AwardBadge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AwardBadgeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Badge name is required!",
			})
		}

		c.Locals("validatedBadge", reqData)
		return c.Next()
	}
}

func CreateNotification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateNotificationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "A valid userId is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotification", reqData)
		return c.Next()
	}
}

// UserID validates the :userId route parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil || userID < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
		}

		c.Locals("targetUserID", uint(userID))
		return c.Next()
	}
}
