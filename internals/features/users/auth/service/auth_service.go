package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/configs"
	authModel "ttracker_backend/internals/features/users/auth/model"
	authRepo "ttracker_backend/internals/features/users/auth/repository"
	userDTO "ttracker_backend/internals/features/users/user/dto"
	helper "ttracker_backend/internals/helpers"
)

// ========================== LOGIN ==========================
// POST /login
//
// Unknown username and wrong password produce byte-identical 401
// responses; only the server log tells them apart.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request format")
	}
	input.Username = strings.TrimSpace(input.Username)

	user, err := authRepo.FindUserByUsername(db, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INFO] login failed: unknown username %q", input.Username)
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication failed")
		}
		log.Println("[ERROR] login user lookup:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		log.Printf("[INFO] login failed: wrong password for %q", input.Username)
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication failed")
	}

	token, err := GenerateToken(user, configs.JWTSecret, time.Now())
	if err != nil {
		log.Println("[ERROR] token sign:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "Logged in successfully", fiber.Map{
		"user":  userDTO.FromModel(user),
		"token": token,
	})
}

// ========================== LOGOUT ==========================
// GET /logout (gated)
//
// Blacklists the presented token until its natural expiry. A teardown
// error is 403, matching the old session-destroy failure path.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusForbidden, "Log out failed")
	}

	expiredAt, err := TokenExpiry(tokenString)
	if err != nil {
		expiredAt = time.Now().Add(TokenTTL)
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] logout blacklist insert:", err)
		return fiber.NewError(fiber.StatusForbidden, "Log out failed")
	}

	return helper.JsonOK(c, "success", nil)
}
