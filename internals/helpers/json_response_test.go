package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Athlete not found")
	})

	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body["status"] != float64(404) {
		t.Errorf("expected status field 404, got %v", body["status"])
	}
	if body["error"] != "Athlete not found" {
		t.Errorf("expected error message, got %v", body["error"])
	}
	if _, ok := body["violations"]; ok {
		t.Error("violations must be omitted for plain errors")
	}
}

func TestJsonErrorZeroStatusFallsBackTo500(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, 0, "")
	})
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["error"] == "" {
		t.Error("expected a fallback error message")
	}
}

func TestJsonValidationErrorCarriesViolations(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, []Violation{
			{Field: "first_name", Message: "First name must be specified"},
		})
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	violations, ok := body["violations"].([]any)
	if !ok || len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", body["violations"])
	}
	v := violations[0].(map[string]any)
	if v["field"] != "first_name" {
		t.Errorf("expected field first_name, got %v", v["field"])
	}
}

func TestJsonOKEnvelope(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"n": 1})
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}
	if body["message"] != "ok" {
		t.Errorf("expected default message, got %v", body["message"])
	}
}

func TestJsonCreatedStatus(t *testing.T) {
	status, _ := performRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "Success", nil)
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
}
