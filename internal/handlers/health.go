package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/rms/internal/store"
)

// HealthHandler reports whether storage is reachable.
type HealthHandler struct {
	db store.Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(db store.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health answers 200 when the database responds to a ping and 503 otherwise.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
