package models

import (
	"time"

	"gorm.io/gorm"
)

type Doctor struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Phone           string     `json:"phone" gorm:"not null"`
	FullName        string     `json:"full_name" gorm:"not null"`
	Email           string     `json:"email"`
	SpecialtyID     *uint      `json:"specialty_id"`
	Specialty       *Specialty `json:"specialty,omitempty" gorm:"foreignKey:SpecialtyID"`
	LicenseNumber   string     `json:"license_number"`
	ExperienceYears int        `json:"experience_years"`
	Bio             string     `json:"bio"`
	BioAr           string     `json:"bio_ar"`
	Address         string     `json:"address"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Whatsapp        string     `json:"whatsapp"`
	Avatar          string     `json:"avatar"`
	IsApproved      bool       `json:"is_approved" gorm:"default:false"`
	IsVip           bool       `json:"is_vip" gorm:"default:false"`
	VipExpiresAt    *time.Time `json:"vip_expires_at"`
	Rating          float64    `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount     int        `json:"review_count" gorm:"default:0"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// A doctor always starts unapproved, whatever the caller sent.
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	d.IsApproved = false
	return nil
}
