package routes

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rms/internal/config"
	"github.com/example/rms/internal/handlers"
	"github.com/example/rms/internal/logging"
	"github.com/example/rms/internal/services"
	"github.com/example/rms/internal/store/memory"
	"github.com/example/rms/internal/views"
)

func newTestApp(t *testing.T, debug bool) *fiber.App {
	t.Helper()

	log := logging.NewWithOutput(io.Discard, "info", "text")
	renderer, err := views.New()
	require.NoError(t, err)

	s := memory.New()
	notifier := services.NewTelegramService("", "", log)

	app := NewApp(&config.Config{Debug: debug}, log)
	Mount(app, Handlers{
		Customers:  handlers.NewCustomerHandler(s, log),
		Complaints: handlers.NewComplaintHandler(s, notifier, log),
		Pages:      handlers.NewPageHandler(s, s, renderer),
		Health:     handlers.NewHealthHandler(s),
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header.Get(fiber.HeaderXRequestID)
}

func TestRouteTable(t *testing.T) {
	app := newTestApp(t, true)

	status, body, requestID := send(t, app, fiber.MethodPost, "/add-customer", `{"name":"Ana","email":"ana@example.com"}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.NotEmpty(t, requestID)

	status, _, _ = send(t, app, fiber.MethodPost, "/complaint", `{"customer_id":1,"issue_type":"Low Speed","description":"slow at night"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	status, _, _ = send(t, app, fiber.MethodPut, "/complaint/1", `{"status":"Resolved"}`)
	assert.Equal(t, fiber.StatusOK, status)

	for _, path := range []string{"/", "/customers", "/complaints", "/view/customers", "/view/complaints", "/healthz"} {
		status, _, _ = send(t, app, fiber.MethodGet, path, "")
		assert.Equal(t, fiber.StatusOK, status, path)
	}
}

func TestMetricsEndpointReflectsTraffic(t *testing.T) {
	app := newTestApp(t, true)

	send(t, app, fiber.MethodPut, "/complaint/404", `{"status":"Resolved"}`)

	status, body, _ := send(t, app, fiber.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `rms_http_requests_total{method="PUT",route="/complaint/:id",status="404"}`)
}

func TestUnknownRouteIs404(t *testing.T) {
	app := newTestApp(t, false)

	status, body, _ := send(t, app, fiber.MethodGet, "/nope", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "message")
}

func TestPanicIsRecovered(t *testing.T) {
	log := logging.NewWithOutput(io.Discard, "info", "text")
	app := NewApp(&config.Config{Debug: true}, log)
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	status, body, _ := send(t, app, fiber.MethodGet, "/panic", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, `"detail":"boom"`)
}
