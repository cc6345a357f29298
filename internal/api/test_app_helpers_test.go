package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T, today string) *fiber.App {
	t.Helper()

	handler := NewHandler(nil)
	if today != "" {
		pinned, err := time.ParseInLocation("2006-01-02", today, time.UTC)
		if err != nil {
			t.Fatalf("parse pinned day %s failed: %v", today, err)
		}
		handler.now = func() time.Time { return pinned.Add(10 * time.Hour) }
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func requestGET(t *testing.T, app *fiber.App, path string, expectedStatus int) string {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != expectedStatus {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("GET %s expected status %d, got %d (body: %s)", path, expectedStatus, response.StatusCode, body)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("GET %s read body failed: %v", path, err)
	}
	return string(body)
}
