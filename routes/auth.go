package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/controllers"
	"github.com/hikmacare/hikma-admin/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/request-otp", controllers.RequestOTP)
	auth.Post("/verify", controllers.VerifyOTP)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.Me)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
