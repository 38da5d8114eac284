package communityRoutes

import (
	communityController "skillup/controllers/community"
	"skillup/middleware"
	communityValidator "skillup/validators/community"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App, jwt *middleware.JWT, community *communityController.Controller) {
	app.Get("/api/community/posts", jwt.Protected(), community.ListPosts)
	app.Post("/api/community/posts", jwt.Protected(), communityValidator.CreatePost(), community.CreatePost)

	// Legacy open badge listing plus the bearer-scoped alias
	app.Get("/badges/:userId", communityValidator.UserID(), community.ListBadges)
	app.Post("/badges/:userId", jwt.Protected(), communityValidator.UserID(), communityValidator.AwardBadge(), community.AwardBadge)
	app.Get("/api/badges", jwt.Protected(), community.MyBadges)

	app.Get("/api/notifications", jwt.Protected(), community.ListNotifications)
}
