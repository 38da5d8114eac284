package topicController

import (
	"log"

	"skillup/middleware"
	"skillup/models"
	"skillup/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	db    *gorm.DB
	media storage.MediaStore
}

func New(db *gorm.DB, media storage.MediaStore) *Controller {
	return &Controller{db: db, media: media}
}

type moduleView struct {
	ID         uint   `json:"id"`
	TopicID    uint   `json:"topic_id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Duration   int    `json:"duration"`
	MediaURL   string `json:"media_url"`
	OrderIndex int    `json:"order_index"`
}

type topicView struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Modules     []moduleView `json:"modules"`
}

func (ct *Controller) moduleViews(modules []models.Module) []moduleView {
	views := make([]moduleView, 0, len(modules))
	for _, m := range modules {
		views = append(views, moduleView{
			ID:         m.ID,
			TopicID:    m.TopicID,
			Title:      m.Title,
			Type:       m.Type,
			Duration:   m.Duration,
			MediaURL:   ct.media.URL(m.MediaPath),
			OrderIndex: m.OrderIndex,
		})
	}
	return views
}

// ListTopics returns all topics with their modules nested in order
func (ct *Controller) ListTopics(c *fiber.Ctx) error {
	var topics []models.Topic
	err := ct.db.Where("is_deleted = ?", false).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index ASC")
		}).
		Find(&topics).Error
	if err != nil {
		log.Printf("Error fetching topics: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}

	views := make([]topicView, 0, len(topics))
	for _, t := range topics {
		views = append(views, topicView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Modules:     ct.moduleViews(t.Modules),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully.", views)
}
