package db

import (
	"log"

	"github.com/hikmacare/hikma-admin/models"
)

// Seed inserts an initial superadmin plus a handful of marketplace records
// so a fresh deployment has something to show. Runs only on an empty users
// table.
func Seed() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding database...")

	admin := models.User{
		Phone:    "+96170123456",
		FullName: "Super Admin",
		Email:    "admin@hikma.com",
		UserType: "superadmin",
		Role:     "admin",
		IsActive: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Seed failed: %v", err)
		return
	}

	approved := models.Doctor{
		UserID:   admin.ID,
		FullName: "Dr. Sarah Smith",
		Phone:    "+96170111222",
		Email:    "sarah@doctor.com",
		IsVip:    true,
		Rating:   4.8,
	}
	DB.Create(&approved)
	// BeforeCreate forces is_approved false; flip the seeded profile the way
	// an admin approval would.
	DB.Model(&approved).Update("is_approved", true)

	DB.Create(&models.Doctor{
		UserID:   admin.ID,
		FullName: "Dr. John Doe",
		Phone:    "+96170333444",
		Email:    "john@doctor.com",
	})

	hospital := models.Organization{
		UserID:  admin.ID,
		Name:    "Beirut General Hospital",
		Type:    "hospital",
		Phone:   "+9611222333",
		Address: "Hamra, Beirut",
	}
	DB.Create(&hospital)
	DB.Model(&hospital).Update("status", models.OrgStatusApproved)

	DB.Create(&models.Organization{
		UserID:  admin.ID,
		Name:    "City Clinic",
		Type:    "clinic",
		Phone:   "+9611444555",
		Address: "Achrafieh, Beirut",
	})

	log.Println("Database seeded!")
}
