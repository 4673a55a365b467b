package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/athletes/dto"
	"ttracker_backend/internals/features/athletes/model"
	helper "ttracker_backend/internals/helpers"
)

// AthletePageController serves the browser pages under /data.
type AthletePageController struct {
	DB *gorm.DB
}

func NewAthletePageController(db *gorm.DB) *AthletePageController {
	return &AthletePageController{DB: db}
}

// GET /data
func (pc *AthletePageController) DataHome(c *fiber.Ctx) error {
	return c.Render("data", fiber.Map{"Title": "T-Tracker data"})
}

// GET /data/athlete/:id
func (pc *AthletePageController) Detail(c *fiber.Ctx) error {
	var athlete model.AthleteModel
	if err := pc.DB.First(&athlete, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Athlete not found")
		}
		log.Println("[ERROR] athlete page detail:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch athlete")
	}
	return c.Render("athlete_detail", fiber.Map{
		"Title":   athlete.FullName(),
		"Athlete": dto.FromModel(&athlete),
	})
}

// GET /data/athlete/create
func (pc *AthletePageController) CreateForm(c *fiber.Ctx) error {
	return c.Render("athlete_form", fiber.Map{"Title": "Create Athlete"})
}

// POST /data/athlete/create: validation failures re-render the form
// with the violation list instead of going through the error channel.
func (pc *AthletePageController) CreateSubmit(c *fiber.Ctx) error {
	var req dto.CreateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("athlete_form", fiber.Map{
			"Title":   "Create Athlete",
			"Athlete": req,
			"Errors":  violations,
		})
	}

	var existing model.AthleteModel
	err := pc.DB.Where("first_name = ? AND last_name = ?", req.FirstName, req.LastName).
		First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).Render("athlete_form", fiber.Map{
			"Title":   "Create Athlete",
			"Athlete": req,
			"Errors":  []helper.Violation{{Field: "first_name", Message: "Athlete already exists"}},
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] athlete form de-dup check:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create athlete")
	}

	athlete := req.ToModel()
	if err := pc.DB.Create(athlete).Error; err != nil {
		log.Println("[ERROR] athlete form create:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create athlete")
	}

	return c.Redirect("/data/athlete/"+athlete.ID.String(), fiber.StatusSeeOther)
}
