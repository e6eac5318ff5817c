package models

type Service struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Duration       int            `json:"duration"` // minutes
	DoctorID       *uint          `json:"doctor_id"`
	Doctor         *Doctor        `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	OrganizationID *uint          `json:"organization_id"`
	Organization   *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	Images         []ServiceImage `json:"images,omitempty" gorm:"foreignKey:ServiceID"`
}

type ServiceImage struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	ServiceID    uint   `json:"service_id"`
	ImageURL     string `json:"image_url" gorm:"not null"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}
