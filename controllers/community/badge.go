package communityController

import (
	"log"

	"skillup/middleware"
	"skillup/models"
	communityValidator "skillup/validators/community"

	"github.com/gofiber/fiber/v2"
)

// ListBadges returns the badges of the user named in the path. Legacy
// open route kept for older clients.
func (ct *Controller) ListBadges(c *fiber.Ctx) error {
	targetUserID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var badges []models.Badge
	if err := ct.db.Where("user_id = ?", targetUserID).Order("created_at DESC").Find(&badges).Error; err != nil {
		log.Printf("Error fetching badges: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch badges")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully.", badges)
}

// MyBadges is the bearer-scoped alias: the user id comes from the token
func (ct *Controller) MyBadges(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token")
	}

	var badges []models.Badge
	if err := ct.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&badges).Error; err != nil {
		log.Printf("Error fetching badges: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch badges")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully.", badges)
}

// AwardBadge appends a badge to the target user's record
func (ct *Controller) AwardBadge(c *fiber.Ctx) error {
	targetUserID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	reqData, ok := c.Locals("validatedBadge").(*communityValidator.AwardBadgeRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	badge := models.Badge{
		UserID:      user.ID,
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := ct.db.Create(&badge).Error; err != nil {
		log.Printf("Error awarding badge: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to award badge")
	}

	notification := models.Notification{
		UserID: user.ID,
		Title:  "New badge earned",
		Body:   "You earned the " + badge.Name + " badge.",
	}
	if err := ct.db.Create(&notification).Error; err != nil {
		log.Printf("Error creating badge notification: %v", err)
	}

	go ct.mailer.SendBadgeAwarded(user.Name, user.Email, badge.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Badge awarded successfully.", badge)
}
