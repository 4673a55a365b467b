package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/athletes/controller"
	"ttracker_backend/internals/middlewares"
)

// WebRoutes serves the browser pages. The create form is registered
// before the :id detail route.
func WebRoutes(app *fiber.App, db *gorm.DB) {
	pages := controller.NewAthletePageController(db)
	idGuard := middlewares.ValidateEntityID()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": "T-Tracker"})
	})

	data := app.Group("/data")
	data.Get("/", pages.DataHome)
	data.Get("/athlete/create", pages.CreateForm)
	data.Post("/athlete/create", pages.CreateSubmit)
	data.Get("/athlete/:id", idGuard, pages.Detail)
}
