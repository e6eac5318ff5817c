package models

import (
	"time"
)

// OTPCode is a transient login credential. The raw code is never stored,
// only its bcrypt hash; a code satisfies at most one verification.
type OTPCode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"not null;index"`
	CodeHash  string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
