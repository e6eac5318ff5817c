package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"unique;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type" gorm:"default:patient"` // patient, doctor, admin, superadmin
	Role      string    `json:"role" gorm:"default:user"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
