package models

// Specialty doubles as the create-request body; the form tags let multipart
// uploads bind their text fields.
type Specialty struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" form:"name" gorm:"not null"`
	NameAr        string `json:"name_ar" form:"name_ar"`
	Description   string `json:"description" form:"description"`
	DescriptionAr string `json:"description_ar" form:"description_ar"`
	Icon          string `json:"icon" form:"icon"`
	IsActive      bool   `json:"is_active" form:"is_active" gorm:"default:true"`
}
