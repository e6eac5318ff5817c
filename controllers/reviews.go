package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetReviews lists reviews, optionally scoped to a doctor or clinic.
func GetReviews(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Review{}).Preload("User")

	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if clinicID := c.Query("clinic_id"); clinicID != "" {
		query = query.Where("organization_id = ?", clinicID)
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch reviews")
	}
	return utils.OK(c, fiber.StatusOK, reviews)
}

func GetReview(c *fiber.Ctx) error {
	var review models.Review
	if err := db.DB.Preload("User").First(&review, c.Params("reviewId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Review not found")
	}
	return utils.OK(c, fiber.StatusOK, review)
}

// UpdateReviewVisibility hides or shows a review, then recomputes the
// reviewed doctor's aggregate rating from visible reviews only.
func UpdateReviewVisibility(c *fiber.Ctx) error {
	type request struct {
		IsVisible *bool `json:"is_visible"`
	}
	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if input.IsVisible == nil {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "is_visible is required")
	}

	var review models.Review
	if err := db.DB.First(&review, c.Params("reviewId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Review not found")
	}

	if err := db.DB.Model(&review).Update("is_hidden", !*input.IsVisible).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update review")
	}

	if review.DoctorID != nil {
		if err := recomputeDoctorRating(db.DB, *review.DoctorID); err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to recompute rating")
		}
	}

	return utils.OK(c, fiber.StatusOK, review)
}

func recomputeDoctorRating(tx *gorm.DB, doctorID uint) error {
	var count int64
	var avg float64

	if err := tx.Model(&models.Review{}).
		Where("doctor_id = ? AND is_hidden = ?", doctorID, false).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		if err := tx.Model(&models.Review{}).
			Where("doctor_id = ? AND is_hidden = ?", doctorID, false).
			Select("AVG(rating)").Scan(&avg).Error; err != nil {
			return err
		}
	}

	return tx.Model(&models.Doctor{}).Where("id = ?", doctorID).Updates(map[string]interface{}{
		"rating":       avg,
		"review_count": count,
	}).Error
}
