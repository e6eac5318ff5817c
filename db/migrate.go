package db

import (
	"log"

	"github.com/hikmacare/hikma-admin/models"
)

// Migrate runs AutoMigrate for every marketplace table.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Specialty{},
		&models.Doctor{},
		&models.Organization{},
		&models.ClinicStaff{},
		&models.WorkingHour{},
		&models.Service{},
		&models.ServiceImage{},
		&models.Slider{},
		&models.DailyTip{},
		&models.Review{},
		&models.OTPCode{},
		&models.Appointment{},
		&models.ProfileView{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("✅ Database migrated successfully!")
}
