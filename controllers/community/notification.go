package communityController

import (
	"log"

	"skillup/middleware"
	"skillup/models"
	communityValidator "skillup/validators/community"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the caller's notifications, newest first
func (ct *Controller) ListNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token")
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var notifications []models.Notification
	if err := ct.db.Where("user_id = ?", userID).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var total int64
	ct.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total)

	response := map[string]interface{}{
		"notifications": notifications,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully.", response)
}

// CreateNotification lets an admin push a notification to any user
func (ct *Controller) CreateNotification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotification").(*communityValidator.CreateNotificationRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	notification := models.Notification{
		UserID: user.ID,
		Title:  reqData.Title,
		Body:   reqData.Body,
	}

	if err := ct.db.Create(&notification).Error; err != nil {
		log.Printf("Error creating notification: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification created successfully.", notification)
}
