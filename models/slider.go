package models

import (
	"time"
)

// Slider doubles as the create-request body; the form tags let multipart
// uploads bind their text fields.
type Slider struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" form:"title" gorm:"not null"`
	TitleAr       string    `json:"title_ar" form:"title_ar"`
	Description   string    `json:"description" form:"description"`
	DescriptionAr string    `json:"description_ar" form:"description_ar"`
	ImageURL      string    `json:"image_url" form:"image_url" gorm:"not null"`
	OverlayColor  string    `json:"overlay_color" form:"overlay_color"`
	Link          string    `json:"link" form:"link"`
	IsActive      bool      `json:"is_active" form:"is_active" gorm:"default:true"`
	DisplayOrder  int       `json:"display_order" form:"display_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
