package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
	"github.com/hikmacare/hikma-admin/utils"
)

// GetUsers lists users with server-side pagination.
func GetUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)

	query := db.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", s, "%"+search+"%")
	}
	if userType := c.Query("user_type"); userType != "" {
		query = query.Where("user_type = ?", userType)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&users).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch users")
	}

	return utils.OK(c, fiber.StatusOK, utils.PagedResult{Data: users, Total: total})
}

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
	}
	return utils.OK(c, fiber.StatusOK, user)
}

// CreateUser registers a user from the admin panel.
func CreateUser(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}
	if user.Phone == "" || user.FullName == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "VALIDATION", "Phone and full name are required")
	}

	var existing models.User
	if db.DB.Where("phone = ?", user.Phone).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusConflict, "CONFLICT", "User with this phone already exists")
	}

	user.ID = 0
	if err := db.DB.Create(user).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create user: "+err.Error())
	}
	return utils.OK(c, fiber.StatusCreated, user)
}

type userInput struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	UserType *string `json:"user_type"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UpdateUser applies a partial update to a user record.
func UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
	}

	input := new(userInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Cannot parse JSON")
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.UserType != nil {
		updates["user_type"] = *input.UserType
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update user")
		}
	}
	return utils.OK(c, fiber.StatusOK, user)
}
