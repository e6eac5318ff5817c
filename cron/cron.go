package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
)

// StartCronJobs initializes and starts the cron scheduler for VIP expiry
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run hourly to clear VIP flags whose expiry has passed
	_, err := c.AddFunc("0 * * * *", ExpireVipDoctors)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for VIP expiry")
}

// ExpireVipDoctors clears the VIP flag on every doctor whose expiry
// timestamp is in the past. VIP-filtered reads therefore never need a
// per-row expiry check.
func ExpireVipDoctors() {
	res := db.DB.Model(&models.Doctor{}).
		Where("is_vip = ? AND vip_expires_at IS NOT NULL AND vip_expires_at <= ?", true, time.Now()).
		Updates(map[string]interface{}{
			"is_vip":         false,
			"vip_expires_at": nil,
		})
	if res.Error != nil {
		log.Printf("Error expiring VIP doctors: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Cleared VIP status for %d doctors", res.RowsAffected)
	}
}
