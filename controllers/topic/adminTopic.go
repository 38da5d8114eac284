package topicController

import (
	"log"
	"strconv"

	"skillup/middleware"
	"skillup/models"
	topicValidator "skillup/validators/topic"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateTopic creates a new topic
func (ct *Controller) AdminCreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*topicValidator.CreateTopicRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	topic := models.Topic{
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := ct.db.Create(&topic).Error; err != nil {
		log.Printf("Error creating topic: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create topic")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully.", topic)
}

// AdminUploadModule creates a module with its media file from a
// multipart form: topicId, title, type, duration, media
func (ct *Controller) AdminUploadModule(c *fiber.Ctx) error {
	topicID, ok := c.Locals("topicID").(int)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var topic models.Topic
	if err := ct.db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Topic not found")
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A media file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store media")
	}
	defer src.Close()

	ref, err := ct.media.Save(c.Context(), src, fileHeader.Size,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Error storing media: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store media")
	}

	moduleType := c.FormValue("type")
	if moduleType == "" {
		moduleType = "VIDEO"
	}
	duration, _ := strconv.Atoi(c.FormValue("duration"))

	// Append at the end of the topic unless an order was given
	orderIndex, _ := strconv.Atoi(c.FormValue("orderIndex"))
	if orderIndex == 0 {
		var maxOrder int
		ct.db.Model(&models.Module{}).Where("topic_id = ? AND is_deleted = ?", topicID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	module := models.Module{
		TopicID:    uint(topicID),
		Title:      c.FormValue("title"),
		Type:       moduleType,
		Duration:   duration,
		MediaPath:  ref,
		OrderIndex: orderIndex,
	}

	if err := ct.db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		// The orphan-media sweep picks up the stored file later
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", ct.moduleViews([]models.Module{module})[0])
}

// AdminDeleteModule removes a module and its stored media
func (ct *Controller) AdminDeleteModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var module models.Module
	if err := ct.db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	module.IsDeleted = true
	if err := ct.db.Save(&module).Error; err != nil {
		log.Printf("Error deleting module: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module")
	}

	if module.MediaPath != "" {
		if err := ct.media.Delete(c.Context(), module.MediaPath); err != nil {
			log.Printf("Error deleting media %s: %v", module.MediaPath, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully.", nil)
}
