package progressValidator

import (
	"strconv"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProgressRequest struct {
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

type CompletionRequest struct {
	UserID   uint `json:"userId"`
	ModuleID uint `json:"moduleId"`
}

// UpsertProgress validates the legacy progress route params and body
func UpsertProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil || userID < 1 {
			errors["userId"] = "A valid userId is required!"
		}

		topicID, err := strconv.Atoi(c.Params("topicId"))
		if err != nil || topicID < 1 {
			errors["topicId"] = "A valid topicId is required!"
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Progress < 0 || reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("progressUserID", uint(userID))
		c.Locals("progressTopicID", uint(topicID))
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// CompleteModule validates the XP-award request body
func CompleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompletionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "A valid userId is required!"
		}
		if reqData.ModuleID == 0 {
			errors["moduleId"] = "A valid moduleId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}
