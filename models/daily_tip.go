package models

import (
	"time"
)

// DailyTip doubles as the create-request body; the form tags let multipart
// uploads bind their text fields.
type DailyTip struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" form:"title" gorm:"not null"`
	TitleAr     string    `json:"title_ar" form:"title_ar"`
	Description string    `json:"description" form:"description"`
	Content     string    `json:"content" form:"content"`
	Image       string    `json:"image" form:"image"`
	AuthorID    *uint     `json:"author_id"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	PublishDate time.Time `json:"publish_date"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
