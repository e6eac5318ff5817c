package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/redis"
	"github.com/hikmacare/hikma-admin/utils"
)

const statsCacheTTL = 60 * time.Second

type dashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalDoctors       int64 `json:"total_doctors"`
	TotalOrganizations int64 `json:"total_organizations"`
	ActiveServices     int64 `json:"active_services"`
	PendingDoctors     int64 `json:"pending_doctors"`
	PendingClinics     int64 `json:"pending_clinics"`
}

// GetDashboardStats returns aggregate marketplace counters. The counts are
// cached in Redis for a minute; mutation endpoints do not invalidate this
// cache, staleness is bounded by the TTL.
func GetDashboardStats(c *fiber.Ctx) error {
	if cached, ok := redis.GetCachedStats("dashboard"); ok {
		var stats dashboardStats
		if json.Unmarshal(cached, &stats) == nil {
			return utils.OK(c, fiber.StatusOK, stats)
		}
	}

	var stats dashboardStats
	db.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	db.DB.Model(&models.Doctor{}).Count(&stats.TotalDoctors)
	db.DB.Model(&models.Organization{}).Count(&stats.TotalOrganizations)
	db.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&stats.ActiveServices)
	db.DB.Model(&models.Doctor{}).Where("is_approved = ?", false).Count(&stats.PendingDoctors)
	db.DB.Model(&models.Organization{}).Where("status = ?", models.OrgStatusPending).Count(&stats.PendingClinics)

	if b, err := json.Marshal(stats); err == nil {
		redis.CacheStats("dashboard", b, statsCacheTTL)
	}

	return utils.OK(c, fiber.StatusOK, stats)
}

// HealthCheck is an unauthenticated liveness probe.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
