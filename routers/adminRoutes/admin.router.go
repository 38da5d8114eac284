package adminRoutes

import (
	communityController "skillup/controllers/community"
	topicController "skillup/controllers/topic"
	"skillup/middleware"
	communityValidator "skillup/validators/community"
	topicValidator "skillup/validators/topic"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB, jwt *middleware.JWT, topic *topicController.Controller, community *communityController.Controller) {
	adminGroup := app.Group("/admin", jwt.Protected(), middleware.RequireAdmin(db))

	adminGroup.Post("/topic", topicValidator.CreateTopic(), topic.AdminCreateTopic)
	adminGroup.Post("/upload-module", topicValidator.UploadModule(), topic.AdminUploadModule)
	adminGroup.Delete("/module/:id", topicValidator.ModuleID(), topic.AdminDeleteModule)
	adminGroup.Get("/stats", topic.AdminStats)
	adminGroup.Post("/notifications", communityValidator.CreateNotification(), community.CreateNotification)
}
