package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/parents/dto"
	"ttracker_backend/internals/features/parents/model"
	helper "ttracker_backend/internals/helpers"
)

const listQueryTimeout = 5 * time.Second

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

// GET /api/parents
func (pc *ParentController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), listQueryTimeout)
	defer cancel()

	var parents []model.ParentModel
	if err := pc.DB.WithContext(ctx).
		Order("last_name ASC").
		Find(&parents).Error; err != nil {
		log.Println("[ERROR] ListParents:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch parents")
	}

	return helper.JsonOK(c, "Parents fetched successfully", dto.ListFromModels(parents))
}

// GET /api/parents/:id
func (pc *ParentController) Detail(c *fiber.Ctx) error {
	var parent model.ParentModel
	if err := pc.DB.First(&parent, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parent not found")
		}
		log.Println("[ERROR] ParentDetail:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	return helper.JsonOK(c, "Parent fetched successfully", dto.FromModel(&parent))
}

// POST /api/parents
func (pc *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	parent := req.ToModel()
	if err := pc.DB.Create(parent).Error; err != nil {
		log.Println("[ERROR] CreateParent:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create parent")
	}

	return helper.JsonCreated(c, "Success", fiber.Map{"id": parent.ID})
}

// PUT /api/parents/:id: merge update.
func (pc *ParentController) Update(c *fiber.Ctx) error {
	var req dto.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return &helper.ValidationFailed{Violations: violations}
	}

	var parent model.ParentModel
	if err := pc.DB.First(&parent, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parent not found")
		}
		log.Println("[ERROR] UpdateParent fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update parent")
	}

	req.ApplyToModel(&parent)
	if err := pc.DB.Save(&parent).Error; err != nil {
		log.Println("[ERROR] UpdateParent save:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update parent")
	}

	return helper.JsonUpdated(c, "Success", fiber.Map{"id": parent.ID})
}

// DELETE /api/parents/:id: fetch then delete; second delete is 404.
func (pc *ParentController) Delete(c *fiber.Ctx) error {
	var parent model.ParentModel
	if err := pc.DB.First(&parent, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parent not found")
		}
		log.Println("[ERROR] DeleteParent fetch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete parent")
	}

	if err := pc.DB.Delete(&parent).Error; err != nil {
		log.Println("[ERROR] DeleteParent:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete parent")
	}

	return helper.JsonDeleted(c, "Success", fiber.Map{"id": parent.ID})
}
