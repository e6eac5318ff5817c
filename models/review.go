package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	UserID         uint          `json:"user_id"`
	User           User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DoctorID       *uint         `json:"doctor_id"`
	Doctor         *Doctor       `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	OrganizationID *uint         `json:"organization_id"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Rating         int           `json:"rating" gorm:"not null"`
	Comment        string        `json:"comment"`
	IsHidden       bool          `json:"is_hidden" gorm:"default:false"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}
