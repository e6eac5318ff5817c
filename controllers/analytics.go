package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetDoctorAnalytics aggregates appointment, profile-view and review
// counters for one doctor.
func GetDoctorAnalytics(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	appointments := fiber.Map{}
	var total int64
	for _, status := range []models.AppointmentStatus{
		models.AppointmentPending,
		models.AppointmentConfirmed,
		models.AppointmentInProgress,
		models.AppointmentCompleted,
		models.AppointmentCancelled,
	} {
		var n int64
		db.DB.Model(&models.Appointment{}).
			Where("doctor_id = ? AND status = ?", doctor.ID, status).
			Count(&n)
		appointments[string(status)] = n
		total += n
	}
	appointments["total"] = total

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var viewsTotal, viewsUnique, viewsToday, viewsWeek, viewsMonth int64
	db.DB.Model(&models.ProfileView{}).Where("doctor_id = ?", doctor.ID).Count(&viewsTotal)
	db.DB.Model(&models.ProfileView{}).Where("doctor_id = ?", doctor.ID).
		Distinct("viewer_id").Count(&viewsUnique)
	db.DB.Model(&models.ProfileView{}).
		Where("doctor_id = ? AND viewed_at >= ?", doctor.ID, dayStart).Count(&viewsToday)
	db.DB.Model(&models.ProfileView{}).
		Where("doctor_id = ? AND viewed_at >= ?", doctor.ID, now.AddDate(0, 0, -7)).Count(&viewsWeek)
	db.DB.Model(&models.ProfileView{}).
		Where("doctor_id = ? AND viewed_at >= ?", doctor.ID, now.AddDate(0, -1, 0)).Count(&viewsMonth)

	var reviewTotal int64
	var avg float64
	db.DB.Model(&models.Review{}).Where("doctor_id = ?", doctor.ID).Count(&reviewTotal)
	if reviewTotal > 0 {
		db.DB.Model(&models.Review{}).
			Where("doctor_id = ?", doctor.ID).
			Select("AVG(rating)").Scan(&avg)
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{
		"appointments": appointments,
		"profile_views": fiber.Map{
			"total":      viewsTotal,
			"unique":     viewsUnique,
			"today":      viewsToday,
			"this_week":  viewsWeek,
			"this_month": viewsMonth,
		},
		"reviews": fiber.Map{
			"total":   reviewTotal,
			"average": avg,
		},
	})
}

// GetDoctorProfileViews lists the raw profile-view records for one doctor.
func GetDoctorProfileViews(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("doctorId")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "Doctor not found")
	}

	var views []models.ProfileView
	if err := db.DB.Preload("Viewer").
		Where("doctor_id = ?", doctor.ID).
		Order("viewed_at DESC").
		Find(&views).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch profile views")
	}
	return utils.OK(c, fiber.StatusOK, views)
}
