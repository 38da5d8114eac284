package userController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"path"

	"skillup/config"
	"skillup/middleware"
	"skillup/models"
	"skillup/storage"
	userValidator "skillup/validators/userValidator"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Controller struct {
	db    *gorm.DB
	cfg   *config.Config
	media storage.MediaStore
}

func New(db *gorm.DB, cfg *config.Config, media storage.MediaStore) *Controller {
	return &Controller{db: db, cfg: cfg, media: media}
}

// profileView is the public-safe projection of a user record
type profileView struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Interests []string `json:"interests"`
	XP        uint     `json:"xp"`
}

func (ct *Controller) view(user *models.User) profileView {
	interests := []string{}
	if len(user.Interests) > 0 {
		if err := json.Unmarshal(user.Interests, &interests); err != nil {
			interests = []string{}
		}
	}
	return profileView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Bio:       user.Bio,
		Avatar:    ct.media.URL(user.Avatar),
		Interests: interests,
		XP:        user.XP,
	}
}

func (ct *Controller) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", ct.view(&user))
}

// UpdateProfile applies a partial update: only fields present in the
// body change. The scoping key is always the token's user id.
func (ct *Controller) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No token")
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	var user models.User
	if err := ct.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.Avatar != nil {
		user.Avatar = *reqData.Avatar
	}
	if reqData.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Password), ct.cfg.SaltRound)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
		}
		user.Password = string(hashedPassword)
	}
	if reqData.Interests != nil {
		interestsJSON, err := json.Marshal(*reqData.Interests)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
		}
		user.Interests = datatypes.JSON(interestsJSON)
	}
	if reqData.AvatarURL != nil && *reqData.AvatarURL != "" {
		ref, err := ct.importAvatar(c, *reqData.AvatarURL)
		if err != nil {
			log.Printf("Error importing avatar from %s: %v", *reqData.AvatarURL, err)
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch avatar")
		}
		user.Avatar = ref
	}

	if err := ct.db.Save(&user).Error; err != nil {
		log.Printf("Error updating user profile: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", ct.view(&user))
}

// importAvatar downloads a remote image into the media store and
// returns its reference
func (ct *Controller) importAvatar(c *fiber.Ctx, avatarURL string) (string, error) {
	client := resty.New()
	resp, err := client.R().SetContext(c.Context()).Get(avatarURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != fiber.StatusOK {
		return "", fmt.Errorf("unexpected response status %d", resp.StatusCode())
	}

	filename := "avatar"
	if u, err := url.Parse(avatarURL); err == nil && path.Base(u.Path) != "/" {
		filename = path.Base(u.Path)
	}

	body := resp.Body()
	return ct.media.Save(c.Context(), bytes.NewReader(body), int64(len(body)),
		filename, resp.Header().Get("Content-Type"))
}
