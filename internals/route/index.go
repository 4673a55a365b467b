// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "ttracker_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up WebRoutes...")
	routeDetails.WebRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AthleteRoutes...")
	routeDetails.AthleteRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(api, db)

	log.Println("[INFO] Setting up ParentRoutes...")
	routeDetails.ParentRoutes(api, db)
}
