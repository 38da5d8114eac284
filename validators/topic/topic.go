package topicValidator

import (
	"strconv"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// UploadModule validates the multipart form for module creation
func UploadModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		topicID, err := strconv.Atoi(c.FormValue("topicId"))
		if err != nil || topicID < 1 {
			errors["topicId"] = "A valid topicId is required!"
		}

		if strings.TrimSpace(c.FormValue("title")) == "" {
			errors["title"] = "Title is required!"
		}

		if _, err := c.FormFile("media"); err != nil {
			errors["media"] = "A media file is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("topicID", topicID)
		return c.Next()
	}
}

// ModuleID validates the :id route parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := strconv.Atoi(c.Params("id"))
		if err != nil || moduleID < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id")
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
