package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/users/user/controller"
	"ttracker_backend/internals/middlewares"
	authMw "ttracker_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	gate := authMw.AuthMiddleware(db)
	idGuard := middlewares.ValidateEntityID()

	g := api.Group("/users")
	g.Get("/", gate, ctrl.List)
	// Create doubles as registration, so it carries no gate.
	g.Post("/", ctrl.Create)
	g.Get("/:id", idGuard, ctrl.Detail)
	g.Put("/:id", idGuard, gate, ctrl.Update)
	g.Delete("/:id", idGuard, gate, ctrl.Delete)
}
