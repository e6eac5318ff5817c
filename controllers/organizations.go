package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetOrganizations lists clinics with optional search / status filters.
func GetOrganizations(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Organization{})

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	limit := c.QueryInt("limit", 50)

	var orgs []models.Organization
	if err := query.Limit(limit).Order("created_at DESC").Find(&orgs).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch organizations")
	}
	return utils.OK(c, fiber.StatusOK, orgs)
}

func GetOrganization(c *fiber.Ctx) error {
	var org models.Organization
	if err := db.DB.First(&org, c.Params("clinicId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Organization not found")
	}
	return utils.OK(c, fiber.StatusOK, org)
}

// organizationInput carries form tags alongside json so multipart text
// fields bind too.
type organizationInput struct {
	UserID      *uint    `json:"user_id" form:"user_id"`
	Name        *string  `json:"name" form:"name"`
	Type        *string  `json:"type" form:"type"`
	Phone       *string  `json:"phone" form:"phone"`
	Email       *string  `json:"email" form:"email"`
	Address     *string  `json:"address" form:"address"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
	Description *string  `json:"description" form:"description"`
	Website     *string  `json:"website" form:"website"`
}

func (in *organizationInput) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Type != nil {
		m["type"] = *in.Type
	}
	if in.Phone != nil {
		m["phone"] = *in.Phone
	}
	if in.Email != nil {
		m["email"] = *in.Email
	}
	if in.Address != nil {
		m["address"] = *in.Address
	}
	if in.Latitude != nil {
		m["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		m["longitude"] = *in.Longitude
	}
	if in.Description != nil {
		m["description"] = *in.Description
	}
	if in.Website != nil {
		m["website"] = *in.Website
	}
	return m
}

var validOrgTypes = map[string]bool{"hospital": true, "clinic": true, "pharmacy": true}

// CreateOrganization registers a clinic in pending status. Accepts JSON, or
// multipart form data when a logo image is attached.
func CreateOrganization(c *fiber.Ctx) error {
	input := new(organizationInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if input.Name == nil || *input.Name == "" || input.Type == nil {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Name and type are required")
	}
	if !validOrgTypes[*input.Type] {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Type must be hospital, clinic or pharmacy")
	}

	logoURL, err := uploadFormImage(c, "logo", "organizations")
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload logo")
	}

	org := models.Organization{
		Name: *input.Name,
		Type: *input.Type,
		Logo: logoURL,
	}
	if input.UserID != nil {
		org.UserID = *input.UserID
	}
	applyOrganizationInput(&org, input)

	if err := db.DB.Create(&org).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create organization")
	}

	return utils.OK(c, fiber.StatusCreated, fiber.Map{
		"message": "Organization created",
		"clinic":  org,
	})
}

func UpdateOrganization(c *fiber.Ctx) error {
	var org models.Organization
	if err := db.DB.First(&org, c.Params("clinicId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Organization not found")
	}

	input := new(organizationInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if input.Type != nil && !validOrgTypes[*input.Type] {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Type must be hospital, clinic or pharmacy")
	}
	updates := input.updates()

	if logoURL, err := uploadFormImage(c, "logo", "organizations"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload logo")
	} else if logoURL != "" {
		updates["logo"] = logoURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&org).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update organization")
		}
	}

	return utils.OK(c, fiber.StatusOK, org)
}

func DeleteOrganization(c *fiber.Ctx) error {
	var org models.Organization
	if err := db.DB.First(&org, c.Params("clinicId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Organization not found")
	}
	if err := db.DB.Delete(&org).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to delete organization")
	}
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Organization deleted"})
}

// ApproveOrganization moves a pending clinic to approved.
func ApproveOrganization(c *fiber.Ctx) error {
	return transitionOrganization(c, models.OrgStatusApproved, "", "Organization approved")
}

// RejectOrganization moves a pending clinic to rejected. Requires a reason.
func RejectOrganization(c *fiber.Ctx) error {
	reason, err := requireReason(c)
	if err != nil {
		return err
	}
	return transitionOrganization(c, models.OrgStatusRejected, reason, "Organization rejected")
}

// SuspendOrganization moves an approved clinic to suspended. Requires a
// reason.
func SuspendOrganization(c *fiber.Ctx) error {
	reason, err := requireReason(c)
	if err != nil {
		return err
	}
	return transitionOrganization(c, models.OrgStatusSuspended, reason, "Organization suspended")
}

func requireReason(c *fiber.Ctx) (string, error) {
	type request struct {
		Reason string `json:"reason"`
	}
	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return "", utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return "", utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Reason is required")
	}
	return input.Reason, nil
}

func transitionOrganization(c *fiber.Ctx, status models.OrganizationStatus, reason, message string) error {
	var org models.Organization
	if err := db.DB.First(&org, c.Params("clinicId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Organization not found")
	}

	if err := org.UpdateStatus(db.DB, status); err != nil {
		return utils.Fail(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error())
	}

	if org.Email != "" {
		var mailErr error
		switch status {
		case models.OrgStatusApproved:
			mailErr = utils.SendApprovalEmail(org.Email, org.Name)
		case models.OrgStatusRejected, models.OrgStatusSuspended:
			mailErr = utils.SendRejectionEmail(org.Email, org.Name, reason)
		}
		if mailErr != nil {
			log.Printf("Failed to send status email to %s: %v", org.Email, mailErr)
		}
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{
		"message": message,
		"clinic":  org,
	})
}

func applyOrganizationInput(org *models.Organization, in *organizationInput) {
	if in.Phone != nil {
		org.Phone = *in.Phone
	}
	if in.Email != nil {
		org.Email = *in.Email
	}
	if in.Address != nil {
		org.Address = *in.Address
	}
	if in.Latitude != nil {
		org.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		org.Longitude = *in.Longitude
	}
	if in.Description != nil {
		org.Description = *in.Description
	}
	if in.Website != nil {
		org.Website = *in.Website
	}
}
