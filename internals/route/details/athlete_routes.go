package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/athletes/controller"
	"ttracker_backend/internals/middlewares"
	authMw "ttracker_backend/internals/middlewares/auth"
)

// Keep the list route registered before the :id routes.
func AthleteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAthleteController(db)
	gate := authMw.AuthMiddleware(db)
	idGuard := middlewares.ValidateEntityID()

	g := api.Group("/athletes")
	g.Get("/", gate, ctrl.List)
	g.Post("/", gate, ctrl.Create)
	g.Get("/:id", idGuard, gate, ctrl.Detail)
	g.Put("/:id", idGuard, gate, ctrl.Update)
	g.Delete("/:id", idGuard, gate, ctrl.Delete)
}
