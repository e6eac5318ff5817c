package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/controllers"
	"github.com/hikmacare/hikma-admin/middleware"
)

// SetupContentRoutes configures the public read surface plus the protected
// write endpoints for homepage content, specialties and services.
func SetupContentRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", controllers.HealthCheck)

	specialties := api.Group("/specialties")
	specialties.Get("/", controllers.GetSpecialties)
	specialties.Get("/:id", controllers.GetSpecialty)
	specialties.Post("/", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateSpecialty)
	specialties.Put("/:id", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.UpdateSpecialty)
	specialties.Delete("/:id", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.DeleteSpecialty)

	services := api.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:serviceId", controllers.GetService)
	services.Post("/", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateService)
	services.Put("/:serviceId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.UpdateService)
	services.Delete("/:serviceId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.DeleteService)

	images := api.Group("/service-images")
	images.Get("/", controllers.GetServiceImages)
	images.Post("/", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateServiceImage)
	images.Post("/bulk", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateServiceImagesBulk)
	images.Delete("/:id", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.DeleteServiceImage)

	sliders := api.Group("/sliders")
	sliders.Get("/", controllers.GetSliders)
	sliders.Get("/admin/all", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.GetAllSliders)
	sliders.Get("/:sliderId", controllers.GetSlider)
	sliders.Post("/", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateSlider)
	sliders.Put("/:sliderId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.UpdateSlider)
	sliders.Delete("/:sliderId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.DeleteSlider)

	tips := api.Group("/daily-tips")
	tips.Get("/active", controllers.GetActiveDailyTip)
	tips.Get("/admin/all", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.GetAllDailyTips)
	tips.Get("/:tipId", controllers.GetDailyTip)
	tips.Post("/", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.CreateDailyTip)
	tips.Put("/:tipId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.UpdateDailyTip)
	tips.Delete("/:tipId", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.DeleteDailyTip)

	reviews := api.Group("/reviews")
	reviews.Get("/", controllers.GetReviews)
	reviews.Get("/:reviewId", controllers.GetReview)
	reviews.Patch("/:reviewId/visibility", middleware.Protected(), middleware.RequireSuperAdmin(), controllers.UpdateReviewVisibility)
}
