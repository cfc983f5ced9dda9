package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/rms/internal/metrics"
	"github.com/example/rms/internal/models"
	"github.com/example/rms/internal/store"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	store store.CustomerStore
	log   *logrus.Logger
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(s store.CustomerStore, log *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{store: s, log: log}
}

type createCustomerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	PhoneNumber *string `json:"phone_number"`
}

// CreateCustomer registers a customer and returns the generated id.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	customer := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.store.CreateCustomer(c.UserContext(), &customer); err != nil {
		return err
	}

	metrics.RecordCustomerCreated()
	h.log.WithField("customer_id", customer.ID).Info("customer added")

	return c.JSON(fiber.Map{"message": "Customer added successfully", "id": customer.ID})
}

// ListCustomers returns every customer.
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	items, err := h.store.ListCustomers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}
