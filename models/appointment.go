package models

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "pending"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// Appointment records exist only as analytics counters here; booking and
// scheduling live in the patient-facing product.
type Appointment struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	DoctorID  uint              `json:"doctor_id" gorm:"index"`
	UserID    uint              `json:"user_id"`
	Status    AppointmentStatus `json:"status" gorm:"default:pending"`
	StartsAt  time.Time         `json:"starts_at"`
	CreatedAt time.Time         `json:"created_at"`
}
