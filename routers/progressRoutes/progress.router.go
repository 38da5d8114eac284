package progressRoutes

import (
	progressController "skillup/controllers/progress"
	progressValidator "skillup/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// Both routes are open by design: older mobile clients call them
// without a bearer token, carrying the user id in the path or body.
func SetupProgressRoutes(app *fiber.App, progress *progressController.Controller) {
	app.Post("/user-topics/:userId/:topicId", progressValidator.UpsertProgress(), progress.UpsertProgress)
	app.Post("/api/video/completed", progressValidator.CompleteModule(), progress.CompleteModule)
}
