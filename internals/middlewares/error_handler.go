package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ttracker_backend/internals/configs"
	helper "ttracker_backend/internals/helpers"
)

// GlobalErrorHandler is the single terminal consumer of the error
// channel. API routes get the JSON envelope, browser routes the error
// view. Internal detail is exposed outside production only.
func GlobalErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	switch e := err.(type) {
	case *helper.ValidationFailed:
		log.Printf("[WARN] validation failed: %s %s", c.Method(), c.OriginalURL())
		if wantsJSON(c) {
			return helper.JsonValidationError(c, e.Violations)
		}
		status = fiber.StatusBadRequest
		message = e.Error()
	case *fiber.Error:
		status = e.Code
		message = e.Message
	}

	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	if wantsJSON(c) {
		return helper.JsonError(c, status, message)
	}

	detail := ""
	if !configs.IsProduction() {
		detail = err.Error()
	}
	return c.Status(status).Render("error", fiber.Map{
		"Title":   "Error",
		"Status":  status,
		"Message": message,
		"Error":   detail,
	})
}

func wantsJSON(c *fiber.Ctx) bool {
	p := c.Path()
	if strings.HasPrefix(p, "/api") || p == "/login" || p == "/logout" {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
