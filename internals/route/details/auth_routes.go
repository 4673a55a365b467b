package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "ttracker_backend/internals/features/users/auth/controller"
	"ttracker_backend/internals/middlewares"
	authMw "ttracker_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	gate := authMw.AuthMiddleware(db)

	app.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	app.Get("/logout", gate, ctrl.Logout)
	app.Get("/api/me", gate, ctrl.Me)
}
