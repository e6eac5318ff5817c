package models

import (
	"time"
)

// ClinicStaff is a staff member attached to one clinic (receptionists,
// nurses, managers). Doctors have their own table; this one covers everyone
// the clinic admin manages directly.
type ClinicStaff struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrganizationID uint      `json:"organization_id" gorm:"not null;index"`
	UserID         *uint     `json:"user_id"`
	User           *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FullName       string    `json:"full_name" gorm:"not null"`
	Role           string    `json:"role"` // receptionist, nurse, manager
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
