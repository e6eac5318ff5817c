package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrganizationStatus string

const (
	OrgStatusPending   OrganizationStatus = "pending"
	OrgStatusApproved  OrganizationStatus = "approved"
	OrgStatusSuspended OrganizationStatus = "suspended"
	OrgStatusRejected  OrganizationStatus = "rejected"
)

type Organization struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	UserID      uint               `json:"user_id"`
	User        User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name        string             `json:"name" gorm:"not null"`
	Type        string             `json:"type" gorm:"not null"` // hospital, clinic, pharmacy
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Description string             `json:"description"`
	Website     string             `json:"website"`
	Status      OrganizationStatus `json:"status" gorm:"default:pending"`
	Logo        string             `json:"logo"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrgStatusPending
	}
	return nil
}

// UpdateStatus enforces the clinic lifecycle: pending can be approved or
// rejected, only an approved clinic can be suspended, and nothing moves
// backwards.
func (o *Organization) UpdateStatus(tx *gorm.DB, newStatus OrganizationStatus) error {
	switch o.Status {
	case OrgStatusPending:
		if newStatus != OrgStatusApproved && newStatus != OrgStatusRejected {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case OrgStatusApproved:
		if newStatus != OrgStatusSuspended {
			return fmt.Errorf("invalid transition from approved to %s", newStatus)
		}
	case OrgStatusSuspended, OrgStatusRejected:
		return fmt.Errorf("no transitions allowed from %s", o.Status)
	}

	o.Status = newStatus
	return tx.Model(o).Update("status", newStatus).Error
}
