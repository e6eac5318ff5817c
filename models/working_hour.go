package models

import (
	"fmt"
	"time"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WorkingHour is one weekday's schedule for a clinic. At most one row exists
// per clinic and day; setting a day that already has a row replaces it.
type WorkingHour struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrganizationID uint      `json:"organization_id" gorm:"not null;uniqueIndex:idx_org_day"`
	DayOfWeek      DayOfWeek `json:"day_of_week" gorm:"not null;uniqueIndex:idx_org_day"`
	StartTime      string    `json:"start_time"` // HH:MM
	EndTime        string    `json:"end_time"`   // HH:MM
	BreakStart     *string   `json:"break_start"`
	BreakEnd       *string   `json:"break_end"`
	IsWorkDay      bool      `json:"is_work_day" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidateTimes checks the HH:MM fields. A non-work day needs no times.
func (w *WorkingHour) ValidateTimes() error {
	if !w.IsWorkDay {
		return nil
	}
	for _, v := range []struct {
		name  string
		value *string
	}{
		{"start_time", &w.StartTime},
		{"end_time", &w.EndTime},
		{"break_start", w.BreakStart},
		{"break_end", w.BreakEnd},
	} {
		if v.value == nil {
			continue
		}
		if *v.value == "" {
			if v.name == "start_time" || v.name == "end_time" {
				return fmt.Errorf("%s is required on a work day", v.name)
			}
			continue
		}
		if _, err := time.Parse("15:04", *v.value); err != nil {
			return fmt.Errorf("%s must be in HH:MM format", v.name)
		}
	}
	if w.StartTime >= w.EndTime {
		return fmt.Errorf("start_time must be before end_time")
	}
	return nil
}
