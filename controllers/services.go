package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetAllServices returns all services with their images.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	query := db.DB.Preload("Images")
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if orgID := c.Query("organization_id"); orgID != "" {
		query = query.Where("organization_id = ?", orgID)
	}
	if err := query.Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch services")
	}
	return utils.OK(c, fiber.StatusOK, services)
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.Preload("Images").First(&service, c.Params("serviceId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Service not found")
	}
	return utils.OK(c, fiber.StatusOK, service)
}

// CreateService creates a new service
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if service.Name == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Name is required")
	}

	service.ID = 0
	service.IsActive = true
	if err := db.DB.Create(service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create service")
	}
	return utils.OK(c, fiber.StatusCreated, service)
}

type serviceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateService applies a partial update to a service.
func UpdateService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, c.Params("serviceId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Service not found")
	}

	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update service")
		}
	}
	return utils.OK(c, fiber.StatusOK, service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	var service models.Service
	if db.DB.First(&service, c.Params("serviceId")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Service not found")
	}
	db.DB.Delete(&service)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Service deleted"})
}

// GetServiceImages lists gallery images, optionally for one service.
func GetServiceImages(c *fiber.Ctx) error {
	var images []models.ServiceImage
	query := db.DB.Order("display_order ASC")
	if serviceID := c.Query("service_id"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}
	if err := query.Find(&images).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch service images")
	}
	return utils.OK(c, fiber.StatusOK, images)
}

func CreateServiceImage(c *fiber.Ctx) error {
	image := new(models.ServiceImage)
	if err := c.BodyParser(image); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if image.ImageURL == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Image URL is required")
	}

	image.ID = 0
	if err := db.DB.Create(image).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create service image")
	}
	return utils.OK(c, fiber.StatusCreated, image)
}

// CreateServiceImagesBulk inserts a batch of gallery images at once.
func CreateServiceImagesBulk(c *fiber.Ctx) error {
	type request struct {
		Images []models.ServiceImage `json:"images"`
	}
	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if len(input.Images) == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "At least one image is required")
	}
	for i := range input.Images {
		input.Images[i].ID = 0
	}

	if err := db.DB.Create(&input.Images).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create service images")
	}
	return utils.OK(c, fiber.StatusCreated, input.Images)
}

func DeleteServiceImage(c *fiber.Ctx) error {
	var image models.ServiceImage
	if db.DB.First(&image, c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Service image not found")
	}
	db.DB.Delete(&image)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Service image deleted"})
}
