package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// findClinic resolves the :clinicId path parameter. Every clinic-scoped
// sub-resource starts here so an unknown clinic is a 404, not an empty list.
func findClinic(c *fiber.Ctx) (*models.Organization, error) {
	var org models.Organization
	if err := db.DB.First(&org, c.Params("clinicId")).Error; err != nil {
		return nil, utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Organization not found")
	}
	return &org, nil
}

// GetClinicStaff lists the staff members of one clinic.
func GetClinicStaff(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	var staff []models.ClinicStaff
	if err := db.DB.Where("organization_id = ?", org.ID).Order("full_name ASC").Find(&staff).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch staff")
	}
	return utils.OK(c, fiber.StatusOK, staff)
}

type clinicStaffInput struct {
	UserID   *uint   `json:"user_id" form:"user_id"`
	FullName *string `json:"full_name" form:"full_name"`
	Role     *string `json:"role" form:"role"`
	Phone    *string `json:"phone" form:"phone"`
	Email    *string `json:"email" form:"email"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

// CreateClinicStaff adds a staff member to a clinic.
func CreateClinicStaff(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	input := new(clinicStaffInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if input.FullName == nil || *input.FullName == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Full name is required")
	}

	member := models.ClinicStaff{
		OrganizationID: org.ID,
		UserID:         input.UserID,
		FullName:       *input.FullName,
		IsActive:       true,
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Email != nil {
		member.Email = *input.Email
	}

	if err := db.DB.Create(&member).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create staff member")
	}
	return utils.OK(c, fiber.StatusCreated, member)
}

// UpdateClinicStaff applies a partial update to one staff member.
func UpdateClinicStaff(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	var member models.ClinicStaff
	if err := db.DB.Where("organization_id = ?", org.ID).First(&member, c.Params("staffId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Staff member not found")
	}

	input := new(clinicStaffInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&member).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update staff member")
		}
	}
	return utils.OK(c, fiber.StatusOK, member)
}

// DeleteClinicStaff removes a staff member from a clinic.
func DeleteClinicStaff(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	var member models.ClinicStaff
	if db.DB.Where("organization_id = ?", org.ID).First(&member, c.Params("staffId")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Staff member not found")
	}
	db.DB.Delete(&member)
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Staff member removed"})
}
