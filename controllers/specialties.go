package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

func GetSpecialties(c *fiber.Ctx) error {
	var specialties []models.Specialty
	if err := db.DB.Find(&specialties).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch specialties")
	}
	return utils.OK(c, fiber.StatusOK, specialties)
}

func GetSpecialty(c *fiber.Ctx) error {
	var specialty models.Specialty
	if err := db.DB.First(&specialty, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Specialty not found")
	}
	return utils.OK(c, fiber.StatusOK, specialty)
}

// CreateSpecialty adds a specialty. Accepts multipart form data when an icon
// image is attached.
func CreateSpecialty(c *fiber.Ctx) error {
	specialty := new(models.Specialty)
	if err := c.BodyParser(specialty); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if specialty.Name == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Name is required")
	}

	if iconURL, err := uploadFormImage(c, "icon", "specialties"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload icon")
	} else if iconURL != "" {
		specialty.Icon = iconURL
	}

	specialty.ID = 0
	specialty.IsActive = true
	if err := db.DB.Create(specialty).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create specialty")
	}
	return utils.OK(c, fiber.StatusCreated, specialty)
}

type specialtyInput struct {
	Name          *string `json:"name" form:"name"`
	NameAr        *string `json:"name_ar" form:"name_ar"`
	Description   *string `json:"description" form:"description"`
	DescriptionAr *string `json:"description_ar" form:"description_ar"`
	IsActive      *bool   `json:"is_active" form:"is_active"`
}

func UpdateSpecialty(c *fiber.Ctx) error {
	var specialty models.Specialty
	if err := db.DB.First(&specialty, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Specialty not found")
	}

	input := new(specialtyInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.NameAr != nil {
		updates["name_ar"] = *input.NameAr
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DescriptionAr != nil {
		updates["description_ar"] = *input.DescriptionAr
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if iconURL, err := uploadFormImage(c, "icon", "specialties"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload icon")
	} else if iconURL != "" {
		updates["icon"] = iconURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&specialty).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update specialty")
		}
	}
	return utils.OK(c, fiber.StatusOK, specialty)
}

func DeleteSpecialty(c *fiber.Ctx) error {
	var specialty models.Specialty
	if db.DB.First(&specialty, c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Specialty not found")
	}
	db.DB.Delete(&specialty)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Specialty deleted"})
}
