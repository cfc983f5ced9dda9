package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/rms/internal/store"
	"github.com/example/rms/internal/views"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	customers  store.CustomerStore
	complaints store.ComplaintStore
	views      *views.Renderer
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(customers store.CustomerStore, complaints store.ComplaintStore, renderer *views.Renderer) *PageHandler {
	return &PageHandler{customers: customers, complaints: complaints, views: renderer}
}

// Index serves the complaint submission form.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return h.views.Index(c)
}

// Customers renders the customer table.
func (h *PageHandler) Customers(c *fiber.Ctx) error {
	items, err := h.customers.ListCustomers(c.UserContext())
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return h.views.Customers(c, items)
}

// Complaints renders complaints joined with their customer's name.
func (h *PageHandler) Complaints(c *fiber.Ctx) error {
	items, err := h.complaints.ListComplaintViews(c.UserContext())
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return h.views.Complaints(c, items)
}
