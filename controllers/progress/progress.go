package progressController

import (
	"errors"
	"log"

	"skillup/middleware"
	"skillup/models"
	progressValidator "skillup/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// XPPerModule is awarded once per (user, module) pair
const XPPerModule = 25

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// UpsertProgress writes a user's progress on a topic. One row per
// (user, topic): posting again overwrites instead of duplicating.
func (ct *Controller) UpsertProgress(c *fiber.Ctx) error {
	userID, _ := c.Locals("progressUserID").(uint)
	topicID, _ := c.Locals("progressTopicID").(uint)

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.ProgressRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var topic models.Topic
	if err := ct.db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Topic not found")
	}

	record := models.ProgressRecord{
		UserID:    userID,
		TopicID:   topicID,
		Progress:  reqData.Progress,
		Completed: reqData.Completed,
	}

	err := ct.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "completed", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		log.Printf("Error upserting progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save progress")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully.", record)
}

// CompleteModule awards XP for the first completion of a module. The
// completion row goes in first; the XP increment only happens if that
// insert got past the unique index, so a crash in between can at worst
// lose an award, never double it.
func (ct *Controller) CompleteModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompletion").(*progressValidator.CompletionRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var module models.Module
	if err := ct.db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	completion := models.ModuleCompletion{
		UserID:   reqData.UserID,
		ModuleID: reqData.ModuleID,
	}

	err := ct.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", reqData.UserID).
			UpdateColumn("xp", gorm.Expr("xp + ?", XPPerModule)).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Repeat completions are a normal outcome, not an error
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Module already completed.", fiber.Map{
				"already_completed": true,
				"xp_awarded":        0,
			})
		}
		log.Printf("Error recording completion: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record completion")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completed.", fiber.Map{
		"already_completed": false,
		"xp_awarded":        XPPerModule,
	})
}
