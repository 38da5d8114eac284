package communityController

import (
	"log"

	"skillup/middleware"
	"skillup/models"
	"skillup/utils"
	communityValidator "skillup/validators/community"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	db     *gorm.DB
	mailer *utils.Mailer
}

func New(db *gorm.DB, mailer *utils.Mailer) *Controller {
	return &Controller{db: db, mailer: mailer}
}

// ListPosts returns community posts, newest first, paginated
func (ct *Controller) ListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var posts []models.Post
	if err := ct.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		log.Printf("Error fetching posts: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	var total int64
	ct.db.Model(&models.Post{}).Count(&total)

	response := map[string]interface{}{
		"posts": posts,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully.", response)
}

// CreatePost appends a community post authored by the caller
func (ct *Controller) CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token")
	}

	reqData, ok := c.Locals("validatedPost").(*communityValidator.CreatePostRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	post := models.Post{
		UserID:  user.ID,
		Author:  user.Name,
		Content: reqData.Content,
	}

	if err := ct.db.Create(&post).Error; err != nil {
		log.Printf("Error creating post: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully.", post)
}
