package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func closeWorkdayApp() *fiber.App {
	app := fiber.New()
	app.Post("/close", CloseWorkday(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/close", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCloseWorkdayRequiresTicketsField(t *testing.T) {
	app := closeWorkdayApp()

	// a body without the tickets field is not a reconciliation payload
	if code := postJSON(t, app, `{}`); code != fiber.StatusBadRequest {
		t.Errorf("body without tickets: status = %d, want 400", code)
	}
	if code := postJSON(t, app, ``); code != fiber.StatusBadRequest {
		t.Errorf("missing body: status = %d, want 400", code)
	}
}

func TestCloseWorkdayAcceptsEmptyTicketList(t *testing.T) {
	app := closeWorkdayApp()

	if code := postJSON(t, app, `{"tickets":[]}`); code != fiber.StatusOK {
		t.Errorf("explicit empty list: status = %d, want 200", code)
	}
}

func TestCloseWorkdayRejectsInvalidItem(t *testing.T) {
	app := closeWorkdayApp()

	// items still go through per-item validation
	if code := postJSON(t, app, `{"tickets":[{"ticket_id":"not-a-uuid"}]}`); code != fiber.StatusBadRequest {
		t.Errorf("invalid item: status = %d, want 400", code)
	}
}
