package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetClinicWorkingHours lists a clinic's weekly schedule, one entry per
// configured day, ordered Sunday first.
func GetClinicWorkingHours(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	var hours []models.WorkingHour
	if err := db.DB.Where("organization_id = ?", org.ID).Order("day_of_week ASC").Find(&hours).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch working hours")
	}
	return utils.OK(c, fiber.StatusOK, hours)
}

type workingHourInput struct {
	DayOfWeek  *int    `json:"day_of_week"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	IsWorkDay  *bool   `json:"is_work_day"`
}

// SetClinicWorkingHours creates or replaces the schedule for one weekday.
func SetClinicWorkingHours(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	input := new(workingHourInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if input.DayOfWeek == nil || *input.DayOfWeek < int(models.Sunday) || *input.DayOfWeek > int(models.Saturday) {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	}

	hour := models.WorkingHour{
		OrganizationID: org.ID,
		DayOfWeek:      models.DayOfWeek(*input.DayOfWeek),
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		BreakStart:     input.BreakStart,
		BreakEnd:       input.BreakEnd,
		IsWorkDay:      true,
	}
	if input.IsWorkDay != nil {
		hour.IsWorkDay = *input.IsWorkDay
	}
	if err := hour.ValidateTimes(); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}

	// Replace any existing row for this clinic and day, keeping the
	// one-row-per-day invariant without relying on upsert dialects.
	var existing models.WorkingHour
	res := db.DB.Where("organization_id = ? AND day_of_week = ?", org.ID, hour.DayOfWeek).First(&existing)
	if res.Error == nil {
		hour.ID = existing.ID
		hour.CreatedAt = existing.CreatedAt
		if err := db.DB.Save(&hour).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update working hours")
		}
		return utils.OK(c, fiber.StatusOK, hour)
	}

	if err := db.DB.Create(&hour).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to set working hours")
	}
	return utils.OK(c, fiber.StatusCreated, hour)
}

// DeleteClinicWorkingHours removes the schedule entry for one weekday.
func DeleteClinicWorkingHours(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	day, err := c.ParamsInt("day")
	if err != nil || day < int(models.Sunday) || day > int(models.Saturday) {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "day must be between 0 (Sunday) and 6 (Saturday)")
	}

	res := db.DB.Where("organization_id = ? AND day_of_week = ?", org.ID, day).Delete(&models.WorkingHour{})
	if res.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to delete working hours")
	}
	if res.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "No working hours set for that day")
	}
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Working hours removed"})
}

// GetClinicServices lists the services offered by one clinic.
func GetClinicServices(c *fiber.Ctx) error {
	org, err := findClinic(c)
	if org == nil {
		return err
	}

	var services []models.Service
	if err := db.DB.Preload("Images").Where("organization_id = ?", org.ID).Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch services")
	}
	return utils.OK(c, fiber.StatusOK, services)
}
