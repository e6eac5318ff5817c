package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetActiveDailyTip returns the most recently published active tip, or null
// when none exists (the homepage shows nothing in that case).
func GetActiveDailyTip(c *fiber.Ctx) error {
	var tip models.DailyTip
	err := db.DB.Where("is_active = ?", true).Order("publish_date DESC").First(&tip).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.OK(c, fiber.StatusOK, nil)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch daily tip")
	}
	return utils.OK(c, fiber.StatusOK, tip)
}

// GetAllDailyTips returns every tip for the admin screen.
func GetAllDailyTips(c *fiber.Ctx) error {
	var tips []models.DailyTip
	if err := db.DB.Order("publish_date DESC").Find(&tips).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch daily tips")
	}
	return utils.OK(c, fiber.StatusOK, tips)
}

func GetDailyTip(c *fiber.Ctx) error {
	var tip models.DailyTip
	if err := db.DB.First(&tip, c.Params("tipId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Daily tip not found")
	}
	return utils.OK(c, fiber.StatusOK, tip)
}

// CreateDailyTip adds a tip. Accepts multipart form data when an image is
// attached.
func CreateDailyTip(c *fiber.Ctx) error {
	tip := new(models.DailyTip)
	if err := c.BodyParser(tip); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if tip.Title == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Title is required")
	}

	if imageURL, err := uploadFormImage(c, "image", "daily-tips"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload image")
	} else if imageURL != "" {
		tip.Image = imageURL
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		tip.AuthorID = &userID
	}
	if tip.PublishDate.IsZero() {
		tip.PublishDate = time.Now()
	}

	tip.ID = 0
	tip.IsActive = true
	if err := db.DB.Create(tip).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create daily tip")
	}
	return utils.OK(c, fiber.StatusCreated, tip)
}

type dailyTipInput struct {
	Title       *string    `json:"title" form:"title"`
	TitleAr     *string    `json:"title_ar" form:"title_ar"`
	Description *string    `json:"description" form:"description"`
	Content     *string    `json:"content" form:"content"`
	Image       *string    `json:"image" form:"image"`
	PublishDate *time.Time `json:"publish_date"`
	IsActive    *bool      `json:"is_active" form:"is_active"`
}

func UpdateDailyTip(c *fiber.Ctx) error {
	var tip models.DailyTip
	if err := db.DB.First(&tip, c.Params("tipId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Daily tip not found")
	}

	input := new(dailyTipInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.TitleAr != nil {
		updates["title_ar"] = *input.TitleAr
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.PublishDate != nil {
		updates["publish_date"] = *input.PublishDate
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if imageURL, err := uploadFormImage(c, "image", "daily-tips"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload image")
	} else if imageURL != "" {
		updates["image"] = imageURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&tip).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update daily tip")
		}
	}
	return utils.OK(c, fiber.StatusOK, tip)
}

func DeleteDailyTip(c *fiber.Ctx) error {
	var tip models.DailyTip
	if db.DB.First(&tip, c.Params("tipId")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Daily tip not found")
	}
	db.DB.Delete(&tip)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Daily tip deleted"})
}
