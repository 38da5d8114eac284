package topicController

import (
	"log"

	"skillup/middleware"
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminStats returns aggregate platform counts
func (ct *Controller) AdminStats(c *fiber.Ctx) error {
	var users, topics, modules, posts, completions, badges int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &users},
		{&models.Topic{}, &topics},
		{&models.Module{}, &modules},
		{&models.Post{}, &posts},
		{&models.ModuleCompletion{}, &completions},
		{&models.Badge{}, &badges},
	}

	for _, count := range counts {
		if err := ct.db.Model(count.model).Count(count.dest).Error; err != nil {
			log.Printf("Error counting records: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats")
		}
	}

	var signupsThisWeek, postsToday int64
	ct.db.Model(&models.User{}).Where("created_at >= ?", now.BeginningOfWeek()).Count(&signupsThisWeek)
	ct.db.Model(&models.Post{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&postsToday)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
		"users":             users,
		"topics":            topics,
		"modules":           modules,
		"posts":             posts,
		"completions":       completions,
		"badges":            badges,
		"signups_this_week": signupsThisWeek,
		"posts_today":       postsToday,
	})
}
