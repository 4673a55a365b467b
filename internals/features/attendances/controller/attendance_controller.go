package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	athleteDTO "ttracker_backend/internals/features/athletes/dto"
	athleteModel "ttracker_backend/internals/features/athletes/model"
	"ttracker_backend/internals/features/attendances/dto"
	"ttracker_backend/internals/features/attendances/model"
	userDTO "ttracker_backend/internals/features/users/user/dto"
	userModel "ttracker_backend/internals/features/users/user/model"
	helper "ttracker_backend/internals/helpers"
)

const listQueryTimeout = 5 * time.Second

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// GET /api/attendances
func (ac *AttendanceController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), listQueryTimeout)
	defer cancel()

	var attendances []model.AttendanceModel
	if err := ac.DB.WithContext(ctx).
		Select("id", "date", "venue").
		Order("date ASC").
		Find(&attendances).Error; err != nil {
		log.Println("[ERROR] ListAttendances:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendances")
	}

	return helper.JsonOK(c, "Attendances fetched successfully", dto.ListFromModels(attendances))
}

// GET /api/attendances/:id
//
// The coach and athlete reference lists load concurrently and join
// before the response.
func (ac *AttendanceController) Detail(c *fiber.Ctx) error {
	var attendance model.AttendanceModel
	if err := ac.DB.First(&attendance, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance not found")
		}
		log.Println("[ERROR] AttendanceDetail:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	var (
		coaches  []userModel.UserModel
		athletes []athleteModel.AthleteModel
	)
	errCh := make(chan error, 2)

	go func() {
		errCh <- ac.DB.Model(&model.AttendanceModel{ID: attendance.ID}).
			Association("Coaches").Find(&coaches)
	}()
	go func() {
		errCh <- ac.DB.Model(&model.AttendanceModel{ID: attendance.ID}).
			Association("Athletes").Find(&athletes)
	}()
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			log.Println("[ERROR] attendance refs:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
		}
	}

	detail := dto.AttendanceDetail{
		ID:       attendance.ID,
		Date:     time.Time(attendance.Date).Format("2006-01-02"),
		Venue:    attendance.Venue,
		Coaches:  userDTO.ListFromModels(coaches),
		Athletes: athleteDTO.ListFromModels(athletes),
	}
	return helper.JsonOK(c, "Attendance fetched successfully", detail)
}

// POST /api/attendances
func (ac *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()

	coachIDs, athleteIDs, err := req.ParseIDs()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid object id in reference list")
	}

	attendance := req.ToModel()
	for _, id := range coachIDs {
		attendance.Coaches = append(attendance.Coaches, userModel.UserModel{ID: id})
	}
	for _, id := range athleteIDs {
		attendance.Athletes = append(attendance.Athletes, athleteModel.AthleteModel{ID: id})
	}

	// Insert join rows only; never upsert the referenced records.
	if err := ac.DB.Omit("Coaches.*", "Athletes.*").Create(attendance).Error; err != nil {
		log.Println("[ERROR] CreateAttendance:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance")
	}

	return helper.JsonCreated(c, "Success", fiber.Map{"id": attendance.ID})
}
