package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/configs"
	"ttracker_backend/internals/features/athletes/dto"
	"ttracker_backend/internals/features/athletes/model"
	helper "ttracker_backend/internals/helpers"
)

// List queries run under a hard deadline.
const listQueryTimeout = 5 * time.Second

type AthleteController struct {
	DB *gorm.DB
}

func NewAthleteController(db *gorm.DB) *AthleteController {
	return &AthleteController{DB: db}
}

// GET /api/athletes
func (ac *AthleteController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), listQueryTimeout)
	defer cancel()

	var athletes []model.AthleteModel
	if err := ac.DB.WithContext(ctx).
		Select("id", "first_name", "last_name", "gender", "active").
		Order("first_name ASC").
		Find(&athletes).Error; err != nil {
		log.Println("[ERROR] ListAthletes:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch athletes")
	}

	return helper.JsonOK(c, "Athletes fetched successfully", dto.ListFromModels(athletes))
}

// GET /api/athletes/:id
func (ac *AthleteController) Detail(c *fiber.Ctx) error {
	var athlete model.AthleteModel
	if err := ac.DB.First(&athlete, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Athlete not found")
		}
		log.Println("[ERROR] AthleteDetail:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch athlete")
	}

	return helper.JsonOK(c, "Athlete fetched successfully", dto.FromModel(&athlete))
}

// POST /api/athletes (JSON or multipart with optional avatar file)
func (ac *AthleteController) Create(c *fiber.Ctx) error {
	var req dto.CreateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	// De-dup on the full name pair.
	var existing model.AthleteModel
	err := ac.DB.Where("first_name = ? AND last_name = ?", req.FirstName, req.LastName).
		First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Athlete already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] athlete de-dup check:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create athlete")
	}

	athlete := req.ToModel()

	if file, ferr := c.FormFile("avatar"); ferr == nil && file != nil {
		path, serr := helper.SaveAvatar(c, file, configs.AvatarDir)
		if serr != nil {
			log.Println("[ERROR] avatar save:", serr)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store avatar")
		}
		athlete.PhotoURL = &path
	}

	if err := ac.DB.Create(athlete).Error; err != nil {
		log.Println("[ERROR] CreateAthlete:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create athlete")
	}

	return helper.JsonCreated(c, "Success", fiber.Map{"id": athlete.ID})
}

// PUT /api/athletes/:id: merge update, only supplied fields touched.
func (ac *AthleteController) Update(c *fiber.Ctx) error {
	var req dto.UpdateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	var athlete model.AthleteModel
	if err := ac.DB.First(&athlete, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Athlete not found")
		}
		log.Println("[ERROR] UpdateAthlete fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update athlete")
	}

	req.ApplyToModel(&athlete)

	if file, ferr := c.FormFile("avatar"); ferr == nil && file != nil {
		path, serr := helper.SaveAvatar(c, file, configs.AvatarDir)
		if serr != nil {
			log.Println("[ERROR] avatar save:", serr)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store avatar")
		}
		athlete.PhotoURL = &path
	}

	if err := ac.DB.Save(&athlete).Error; err != nil {
		log.Println("[ERROR] UpdateAthlete save:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update athlete")
	}

	return helper.JsonUpdated(c, "Success", fiber.Map{"id": athlete.ID})
}

// DELETE /api/athletes/:id: fetch then delete; the second delete of
// the same id is 404.
func (ac *AthleteController) Delete(c *fiber.Ctx) error {
	var athlete model.AthleteModel
	if err := ac.DB.First(&athlete, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Athlete not found")
		}
		log.Println("[ERROR] DeleteAthlete fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete athlete")
	}

	if err := ac.DB.Delete(&athlete).Error; err != nil {
		log.Println("[ERROR] DeleteAthlete:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete athlete")
	}

	return helper.JsonDeleted(c, "Success", fiber.Map{"id": athlete.ID})
}
