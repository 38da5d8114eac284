package chatRoutes

import (
	chatController "skillup/controllers/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App, chat *chatController.Controller) {
	app.Use("/ws/chat", chat.Upgrade)
	app.Get("/ws/chat", chat.Chat())
}
