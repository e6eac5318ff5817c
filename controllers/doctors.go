package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetDoctors lists doctors with optional search / approval / VIP filters.
func GetDoctors(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Doctor{}).Preload("Specialty")

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if v := c.Query("is_approved"); v == "true" || v == "false" {
		query = query.Where("is_approved = ?", v == "true")
	}
	if v := c.Query("is_vip"); v == "true" || v == "false" {
		query = query.Where("is_vip = ?", v == "true")
	}
	limit := c.QueryInt("limit", 50)

	var doctors []models.Doctor
	if err := query.Limit(limit).Order("created_at DESC").Find(&doctors).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch doctors")
	}
	return utils.OK(c, fiber.StatusOK, doctors)
}

// GetDoctor returns one doctor by id.
func GetDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.Preload("Specialty").First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}
	return utils.OK(c, fiber.StatusOK, doctor)
}

// doctorInput carries both json and form tags: BodyParser binds multipart
// text fields through the form tag, so dropping it would make every
// multipart create fail validation.
type doctorInput struct {
	Phone           *string  `json:"phone" form:"phone"`
	FullName        *string  `json:"full_name" form:"full_name"`
	Email           *string  `json:"email" form:"email"`
	SpecialtyID     *uint    `json:"specialty_id" form:"specialty_id"`
	LicenseNumber   *string  `json:"license_number" form:"license_number"`
	ExperienceYears *int     `json:"experience_years" form:"experience_years"`
	Bio             *string  `json:"bio" form:"bio"`
	BioAr           *string  `json:"bio_ar" form:"bio_ar"`
	Address         *string  `json:"address" form:"address"`
	Latitude        *float64 `json:"latitude" form:"latitude"`
	Longitude       *float64 `json:"longitude" form:"longitude"`
	Whatsapp        *string  `json:"whatsapp" form:"whatsapp"`
}

func (in *doctorInput) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Phone != nil {
		m["phone"] = *in.Phone
	}
	if in.FullName != nil {
		m["full_name"] = *in.FullName
	}
	if in.Email != nil {
		m["email"] = *in.Email
	}
	if in.SpecialtyID != nil {
		m["specialty_id"] = *in.SpecialtyID
	}
	if in.LicenseNumber != nil {
		m["license_number"] = *in.LicenseNumber
	}
	if in.ExperienceYears != nil {
		m["experience_years"] = *in.ExperienceYears
	}
	if in.Bio != nil {
		m["bio"] = *in.Bio
	}
	if in.BioAr != nil {
		m["bio_ar"] = *in.BioAr
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
	return m
}

// CreateDoctor creates a doctor profile together with its owning user
// account in one transaction. Accepts JSON, or multipart form data when an
// avatar image is attached.
func CreateDoctor(c *fiber.Ctx) error {
	input := new(doctorInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	if input.Phone == nil || *input.Phone == "" || input.FullName == nil || *input.FullName == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Phone and full name are required")
	}

	avatarURL, err := uploadFormImage(c, "avatar", "doctors")
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload avatar")
	}

	var doctor models.Doctor
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		email := ""
		if input.Email != nil {
			email = *input.Email
		}
		user := models.User{
			Phone:    *input.Phone,
			FullName: *input.FullName,
			Email:    email,
			UserType: "doctor",
			Role:     "doctor",
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		doctor = models.Doctor{
			UserID:   user.ID,
			Phone:    *input.Phone,
			FullName: *input.FullName,
			Email:    email,
			Avatar:   avatarURL,
		}
		applyDoctorInput(&doctor, input)
		return tx.Create(&doctor).Error
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create doctor: "+err.Error())
	}

	return utils.OK(c, fiber.StatusCreated, fiber.Map{
		"message": "Doctor created",
		"doctor":  doctor,
	})
}

// UpdateDoctor applies a partial update; fields absent from the body keep
// their stored values.
func UpdateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	input := new(doctorInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse body")
	}
	updates := input.updates()

	if avatarURL, err := uploadFormImage(c, "avatar", "doctors"); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to upload avatar")
	} else if avatarURL != "" {
		updates["avatar"] = avatarURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&doctor).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update doctor")
		}
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{
		"message": "Doctor updated",
		"doctor":  doctor,
	})
}

// DeleteDoctor removes the doctor and its owning user account.
func DeleteDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, doctor.UserID).Error
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to delete doctor")
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Doctor deleted"})
}

// ApproveDoctor flips the approval flag and notifies the doctor.
func ApproveDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	if err := db.DB.Model(&doctor).Update("is_approved", true).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to approve doctor")
	}

	if doctor.Email != "" {
		if err := utils.SendApprovalEmail(doctor.Email, doctor.FullName); err != nil {
			log.Printf("Failed to send approval email to %s: %v", doctor.Email, err)
		}
	}

	doctor.IsApproved = true
	return utils.OK(c, fiber.StatusOK, doctor)
}

// RejectDoctor clears the approval flag. A non-empty reason is required and
// is mailed to the applicant.
func RejectDoctor(c *fiber.Ctx) error {
	type request struct {
		Reason string `json:"reason"`
	}
	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Rejection reason is required")
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	if err := db.DB.Model(&doctor).Update("is_approved", false).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to reject doctor")
	}

	if doctor.Email != "" {
		if err := utils.SendRejectionEmail(doctor.Email, doctor.FullName, input.Reason); err != nil {
			log.Printf("Failed to send rejection email to %s: %v", doctor.Email, err)
		}
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Doctor rejected"})
}

// SetDoctorVip grants or revokes VIP placement. An expiry, when supplied,
// must lie in the future; the cron sweep clears the flag once it passes.
func SetDoctorVip(c *fiber.Ctx) error {
	type request struct {
		IsVip     bool       `json:"is_vip"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if input.IsVip && input.ExpiresAt != nil && !input.ExpiresAt.After(time.Now()) {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "VIP expiry must be in the future")
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	updates := map[string]interface{}{
		"is_vip":         input.IsVip,
		"vip_expires_at": input.ExpiresAt,
	}
	if !input.IsVip {
		updates["vip_expires_at"] = nil
	}
	if err := db.DB.Model(&doctor).Updates(updates).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update VIP status")
	}

	doctor.IsVip = input.IsVip
	doctor.VipExpiresAt = input.ExpiresAt
	return utils.OK(c, fiber.StatusOK, doctor)
}

func applyDoctorInput(doctor *models.Doctor, in *doctorInput) {
	if in.SpecialtyID != nil {
		doctor.SpecialtyID = in.SpecialtyID
	}
	if in.LicenseNumber != nil {
		doctor.LicenseNumber = *in.LicenseNumber
	}
	if in.ExperienceYears != nil {
		doctor.ExperienceYears = *in.ExperienceYears
	}
	if in.Bio != nil {
		doctor.Bio = *in.Bio
	}
	if in.BioAr != nil {
		doctor.BioAr = *in.BioAr
	}
	if in.Address != nil {
		doctor.Address = *in.Address
	}
	if in.Latitude != nil {
		doctor.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		doctor.Longitude = *in.Longitude
	}
	if in.Whatsapp != nil {
		doctor.Whatsapp = *in.Whatsapp
	}
}

// uploadFormImage pulls a file field out of a multipart body and uploads it
// to Cloudinary. Returns "" when the request is plain JSON or the field is
// absent.
func uploadFormImage(c *fiber.Ctx, field, folder string) (string, error) {
	if !strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		return "", nil
	}
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return utils.UploadImage(file, folder)
}
