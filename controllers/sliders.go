package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetSliders returns active sliders in display order (public homepage feed).
func GetSliders(c *fiber.Ctx) error {
	var sliders []models.Slider
	if err := db.DB.Where("is_active = ?", true).Order("display_order ASC").Find(&sliders).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch sliders")
	}
	return utils.OK(c, fiber.StatusOK, sliders)
}

// GetAllSliders returns every slider, active or not, for the admin screen.
func GetAllSliders(c *fiber.Ctx) error {
	var sliders []models.Slider
	if err := db.DB.Order("display_order ASC").Find(&sliders).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch sliders")
	}
	return utils.OK(c, fiber.StatusOK, sliders)
}

func GetSlider(c *fiber.Ctx) error {
	var slider models.Slider
	if err := db.DB.First(&slider, c.Params("sliderId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Slider not found")
	}
	return utils.OK(c, fiber.StatusOK, slider)
}

// CreateSlider adds a homepage slider. Accepts JSON with an image_url, or
// multipart form data with an image file that is uploaded to Cloudinary.
func CreateSlider(c *fiber.Ctx) error {
	slider := new(models.Slider)
	if err := c.BodyParser(slider); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}

	if imageURL, err := uploadFormImage(c, "image", "sliders"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload image")
	} else if imageURL != "" {
		slider.ImageURL = imageURL
	}

	if slider.Title == "" || slider.ImageURL == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Title and image are required")
	}

	slider.ID = 0
	slider.IsActive = true
	if err := db.DB.Create(slider).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create slider")
	}
	return utils.OK(c, fiber.StatusCreated, slider)
}

type sliderInput struct {
	Title         *string `json:"title" form:"title"`
	TitleAr       *string `json:"title_ar" form:"title_ar"`
	Description   *string `json:"description" form:"description"`
	DescriptionAr *string `json:"description_ar" form:"description_ar"`
	ImageURL      *string `json:"image_url" form:"image_url"`
	OverlayColor  *string `json:"overlay_color" form:"overlay_color"`
	Link          *string `json:"link" form:"link"`
	IsActive      *bool   `json:"is_active" form:"is_active"`
	DisplayOrder  *int    `json:"display_order" form:"display_order"`
}

func UpdateSlider(c *fiber.Ctx) error {
	var slider models.Slider
	if err := db.DB.First(&slider, c.Params("sliderId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Slider not found")
	}

	input := new(sliderInput)
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
	if input.DescriptionAr != nil {
		updates["description_ar"] = *input.DescriptionAr
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.OverlayColor != nil {
		updates["overlay_color"] = *input.OverlayColor
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}

	if imageURL, err := uploadFormImage(c, "image", "sliders"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload image")
	} else if imageURL != "" {
		updates["image_url"] = imageURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&slider).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update slider")
		}
	}
	return utils.OK(c, fiber.StatusOK, slider)
}

func DeleteSlider(c *fiber.Ctx) error {
	var slider models.Slider
	if db.DB.First(&slider, c.Params("sliderId")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Slider not found")
	}
	db.DB.Delete(&slider)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Slider deleted"})
}
