package topicRoutes

import (
	topicController "skillup/controllers/topic"
	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTopicRoutes(app *fiber.App, jwt *middleware.JWT, topic *topicController.Controller) {
	app.Get("/api/topics", jwt.Protected(), topic.ListTopics)
}
