package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/middleware"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/redis"
	"github.com/hikmacare/hikma-admin/utils"
)

const otpTTL = 5 * time.Minute

// RequestOTP generates a short-lived login code for a phone number and
// dispatches it over SMS. Only the bcrypt hash is stored.
func RequestOTP(c *fiber.Ctx) error {
	type request struct {
		Phone string `json:"phone"`
	}

	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if input.Phone == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Phone is required")
	}

	code := utils.GenerateOTP()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to generate code")
	}

	otp := models.OTPCode{
		Phone:     input.Phone,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := db.DB.Create(&otp).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to store code")
	}

	if err := utils.SendOTPSMS(input.Phone, code); err != nil {
		log.Printf("Failed to send OTP SMS to %s: %v", input.Phone, err)
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "OTP sent successfully"})
}

// VerifyOTP exchanges a phone + code pair for a token. A code is consumed by
// a guarded UPDATE, so of two concurrent attempts at most one succeeds.
func VerifyOTP(c *fiber.Ctx) error {
	type request struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}

	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if input.Phone == "" || input.OTP == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Phone and OTP are required")
	}

	var codes []models.OTPCode
	if err := db.DB.
		Where("phone = ? AND used = ? AND expires_at > ?", input.Phone, false, time.Now()).
		Order("created_at DESC").
		Find(&codes).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to look up code")
	}

	var matched *models.OTPCode
	for i := range codes {
		if bcrypt.CompareHashAndPassword([]byte(codes[i].CodeHash), []byte(input.OTP)) == nil {
			matched = &codes[i]
			break
		}
	}
	if matched == nil {
		return utils.Fail(c, fiber.StatusBadRequest, "INVALID_OTP", "Invalid OTP")
	}

	// Consume the code. The used = false guard makes this a test-and-set: a
	// concurrent verify that lost the race sees zero rows updated.
	res := db.DB.Model(&models.OTPCode{}).
		Where("id = ? AND used = ?", matched.ID, false).
		Update("used", true)
	if res.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to consume code")
	}
	if res.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "INVALID_OTP", "Invalid OTP")
	}

	var user models.User
	err := db.DB.Where("phone = ?", input.Phone).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch user")
		}
		// First login for this phone: bootstrap a superadmin account.
		user = models.User{
			Phone:    input.Phone,
			FullName: "Admin User",
			UserType: "superadmin",
			Role:     "admin",
			IsActive: true,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create user")
		}
	}

	accessToken, refreshToken, err := issueTokens(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to generate token")
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh access token.
func RefreshToken(c *fiber.Ctx) error {
	type request struct {
		RefreshToken string `json:"refresh_token"`
	}

	input := new(request)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}

	token, err := jwt.Parse(input.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(middleware.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid refresh token")
	}

	claims := token.Claims.(jwt.MapClaims)
	// An access token is signed with the same secret; only tokens minted as
	// refresh tokens may be exchanged here.
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid refresh token")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid refresh token")
	}

	var user models.User
	if err := db.DB.First(&user, uint(id)).Error; err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unknown user")
	}

	accessToken, err := signToken(&user, 24*time.Hour, "access")
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to generate token")
	}

	return utils.OK(c, fiber.StatusOK, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": input.RefreshToken,
	})
}

// Logout revokes the presented token for the remainder of its lifetime.
func Logout(c *fiber.Ctx) error {
	raw := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if raw != "" {
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					ttl := time.Until(time.Unix(int64(exp), 0))
					if err := redis.BlacklistToken(raw, ttl); err != nil {
						log.Printf("Failed to blacklist token: %v", err)
					}
				}
			}
		}
	}
	return utils.OK(c, fiber.StatusOK, fiber.Map{"message": "Successfully logged out"})
}

// Me returns the authenticated user's profile.
func Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
	}
	return utils.OK(c, fiber.StatusOK, user)
}

func issueTokens(user *models.User) (access, refresh string, err error) {
	access, err = signToken(user, 24*time.Hour, "access")
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(user, 7*24*time.Hour, "refresh")
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func signToken(user *models.User, ttl time.Duration, typ string) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"phone":     user.Phone,
		"user_type": user.UserType,
		"role":      user.Role,
		"typ":       typ,
		"exp":       time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.JWTSecret()))
}
