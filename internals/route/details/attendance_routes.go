package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/attendances/controller"
	"ttracker_backend/internals/middlewares"
	authMw "ttracker_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	gate := authMw.AuthMiddleware(db)
	idGuard := middlewares.ValidateEntityID()

	g := api.Group("/attendances")
	g.Get("/", gate, ctrl.List)
	g.Post("/", gate, ctrl.Create)
	g.Get("/:id", idGuard, gate, ctrl.Detail)
}
