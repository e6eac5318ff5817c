package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/controllers"
	"github.com/hikmacare/hikma-admin/middleware"
)

// SetupAdminRoutes configures the superadmin back-office surface under
// /api/admin.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireSuperAdmin())

	doctors := admin.Group("/doctors")
	doctors.Get("/", controllers.GetDoctors)
	doctors.Post("/", controllers.CreateDoctor)
	doctors.Get("/:doctorId", controllers.GetDoctor)
	doctors.Put("/:doctorId", controllers.UpdateDoctor)
	doctors.Delete("/:doctorId", controllers.DeleteDoctor)
	doctors.Post("/:doctorId/approve", controllers.ApproveDoctor)
	doctors.Post("/:doctorId/reject", controllers.RejectDoctor)
	doctors.Post("/:doctorId/vip", controllers.SetDoctorVip)
	doctors.Get("/:doctorId/analytics", controllers.GetDoctorAnalytics)
	doctors.Get("/:doctorId/analytics/profile-views", controllers.GetDoctorProfileViews)

	clinics := admin.Group("/clinics")
	clinics.Get("/", controllers.GetOrganizations)
	clinics.Post("/", controllers.CreateOrganization)
	clinics.Get("/:clinicId", controllers.GetOrganization)
	clinics.Put("/:clinicId", controllers.UpdateOrganization)
	clinics.Delete("/:clinicId", controllers.DeleteOrganization)
	clinics.Post("/:clinicId/approve", controllers.ApproveOrganization)
	clinics.Post("/:clinicId/reject", controllers.RejectOrganization)
	clinics.Post("/:clinicId/suspend", controllers.SuspendOrganization)
	clinics.Get("/:clinicId/staff", controllers.GetClinicStaff)
	clinics.Post("/:clinicId/staff", controllers.CreateClinicStaff)
	clinics.Put("/:clinicId/staff/:staffId", controllers.UpdateClinicStaff)
	clinics.Delete("/:clinicId/staff/:staffId", controllers.DeleteClinicStaff)
	clinics.Get("/:clinicId/working-hours", controllers.GetClinicWorkingHours)
	clinics.Post("/:clinicId/working-hours", controllers.SetClinicWorkingHours)
	clinics.Delete("/:clinicId/working-hours/:day", controllers.DeleteClinicWorkingHours)
	clinics.Get("/:clinicId/services", controllers.GetClinicServices)

	users := admin.Group("/users")
	users.Get("/", controllers.GetUsers)
	users.Post("/", controllers.CreateUser)
	users.Get("/:id", controllers.GetUser)
	users.Put("/:id", controllers.UpdateUser)

	admin.Get("/dashboard/stats", controllers.GetDashboardStats)
}
