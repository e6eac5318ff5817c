package models

import (
	"time"
)

type ProfileView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DoctorID  uint      `json:"doctor_id" gorm:"index"`
	ViewerID  *uint     `json:"viewer_id"`
	Viewer    *User     `json:"viewer,omitempty" gorm:"foreignKey:ViewerID"`
	ViewedAt  time.Time `json:"viewed_at"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
}
