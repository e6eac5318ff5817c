package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/hikmacare/hikma-admin/redis"
	"github.com/hikmacare/hikma-admin/utils"
)

func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "hikma_dev_secret"
	}
	return secret
}

// Protected validates the bearer token and stashes the caller's identity in
// locals. Tokens revoked by logout are rejected even before expiry.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(JWTSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			raw := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
			if redis.IsTokenBlacklisted(raw) {
				return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Token has been revoked")
			}

			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims")
			}

			id, ok := claims["id"].(float64)
			if !ok {
				return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid user ID in token")
			}
			c.Locals("userID", uint(id))

			if userType, ok := claims["user_type"].(string); ok {
				c.Locals("userType", userType)
			}
			if role, ok := claims["role"].(string); ok {
				c.Locals("role", role)
			}

			return c.Next()
		},
	})
}

// RequireSuperAdmin gates the /api/admin surface. Authorization here is a
// plain role-string check; there is no permission matrix.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, _ := c.Locals("userType").(string)
		if userType != "superadmin" && userType != "admin" {
			return utils.Fail(c, fiber.StatusForbidden, "FORBIDDEN", "Superadmin access required")
		}
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
}
