package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/users/auth/service"
	"ttracker_backend/internals/features/users/user/dto"
	"ttracker_backend/internals/features/users/user/model"
	helper "ttracker_backend/internals/helpers"
)

const listQueryTimeout = 5 * time.Second

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users?role=coach
func (uc *UserController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), listQueryTimeout)
	defer cancel()

	tx := uc.DB.WithContext(ctx).
		Select("id", "first_name", "last_name", "username", "gender", "active").
		Order("username ASC")

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("role = ?", role)
	}

	var users []model.UserModel
	if err := tx.Find(&users).Error; err != nil {
		log.Println("[ERROR] ListUsers:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonOK(c, "Users fetched successfully", dto.ListFromModels(users))
}

// GET /api/users/:id
func (uc *UserController) Detail(c *fiber.Ctx) error {
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] UserDetail:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "User fetched successfully", dto.FromModel(&user))
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	// Username must be free before insert.
	var existing model.UserModel
	err := uc.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] username check:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	user := req.ToModel()

	hashed, err := service.HashPassword(user.Password)
	if err != nil {
		log.Println("[ERROR] password hash:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error hashing password")
	}
	user.Password = hashed

	if err := uc.DB.Create(user).Error; err != nil {
		log.Println("[ERROR] CreateUser:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error saving user")
	}

	return helper.JsonCreated(c, "Success", fiber.Map{"id": user.ID})
}

// PUT /api/users/:id: merge update, only supplied fields touched.
func (uc *UserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] UpdateUser fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	// A changed username must stay unique.
	if req.Username != nil && *req.Username != user.Username {
		var taken model.UserModel
		err := uc.DB.Where("username = ? AND id <> ?", *req.Username, user.ID).First(&taken).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] username check:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
		}
	}

	req.ApplyToModel(&user)

	if req.Password != nil {
		hashed, err := service.HashPassword(user.Password)
		if err != nil {
			log.Println("[ERROR] password hash:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Error hashing password")
		}
		user.Password = hashed
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] UpdateUser save:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "Success", fiber.Map{"id": user.ID})
}

// DELETE /api/users/:id: fetch then delete; second delete is 404.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] DeleteUser fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] DeleteUser:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "Success", fiber.Map{"id": user.ID})
}
