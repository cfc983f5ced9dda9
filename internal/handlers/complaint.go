package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/rms/internal/metrics"
	"github.com/example/rms/internal/models"
	"github.com/example/rms/internal/services"
	"github.com/example/rms/internal/store"
)

// ComplaintNotifier is told about new and resolved complaints.
type ComplaintNotifier interface {
	NotifyNewComplaint(n services.ComplaintNotification) error
	NotifyComplaintResolved(n services.ComplaintNotification) error
}

// ComplaintHandler manages complaint endpoints.
type ComplaintHandler struct {
	store    store.ComplaintStore
	notifier ComplaintNotifier
	log      *logrus.Logger
}

// NewComplaintHandler constructs ComplaintHandler.
func NewComplaintHandler(s store.ComplaintStore, notifier ComplaintNotifier, log *logrus.Logger) *ComplaintHandler {
	return &ComplaintHandler{store: s, notifier: notifier, log: log}
}

const complaintNotFound = "Complaint not found"

type createComplaintRequest struct {
	CustomerID  flexibleID `json:"customer_id" validate:"required"`
	IssueType   string     `json:"issue_type" validate:"required"`
	Description *string    `json:"description"`
}

type updateComplaintRequest struct {
	Status *string `json:"status"`
}

type complaintResponse struct {
	ID         uint       `json:"id"`
	IssueType  string     `json:"issue_type"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

// CreateComplaint registers a new open complaint.
func (h *ComplaintHandler) CreateComplaint(c *fiber.Ctx) error {
	var req createComplaintRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	complaint := models.Complaint{
		CustomerID:  uint(req.CustomerID),
		IssueType:   req.IssueType,
		Description: req.Description,
	}
	if err := h.store.CreateComplaint(c.UserContext(), &complaint); err != nil {
		return err
	}

	metrics.RecordComplaintEvent(metrics.ComplaintCreated)
	h.log.WithFields(logrus.Fields{
		"complaint_id": complaint.ID,
		"customer_id":  complaint.CustomerID,
	}).Info("complaint registered")

	h.notifyInBackground(h.notifier.NotifyNewComplaint, notificationFor(&complaint), "complaint notification failed")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Complaint registered successfully"})
}

// UpdateComplaint changes the status of a complaint. An absent status keeps
// the current one.
func (h *ComplaintHandler) UpdateComplaint(c *fiber.Ctx) error {
	id, err := parseID(c, complaintNotFound)
	if err != nil {
		return err
	}

	var req updateComplaintRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}

	complaint, err := h.store.UpdateComplaintStatus(c.UserContext(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, complaintNotFound)
		}
		return err
	}

	metrics.RecordComplaintEvent(metrics.ComplaintUpdated)
	if complaint.IsResolved() {
		metrics.RecordComplaintEvent(metrics.ComplaintResolved)
		h.notifyInBackground(h.notifier.NotifyComplaintResolved, notificationFor(complaint), "resolution notification failed")
	}

	return c.JSON(fiber.Map{"message": "Complaint updated successfully"})
}

// ListComplaints returns every complaint without customer details.
func (h *ComplaintHandler) ListComplaints(c *fiber.Ctx) error {
	items, err := h.store.ListComplaints(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]complaintResponse, 0, len(items))
	for _, item := range items {
		out = append(out, complaintResponse{
			ID:         item.ID,
			IssueType:  item.IssueType,
			Status:     item.Status,
			CreatedAt:  item.CreatedAt,
			ResolvedAt: item.ResolvedAt,
		})
	}
	return c.JSON(out)
}

// notifyInBackground sends n without holding up the response. Failures are
// only logged.
func (h *ComplaintHandler) notifyInBackground(send func(services.ComplaintNotification) error, n services.ComplaintNotification, failure string) {
	go func() {
		if err := send(n); err != nil {
			h.log.WithError(err).WithField("complaint_id", n.ComplaintID).Warn(failure)
		}
	}()
}

func notificationFor(c *models.Complaint) services.ComplaintNotification {
	n := services.ComplaintNotification{
		ComplaintID: c.ID,
		CustomerID:  c.CustomerID,
		IssueType:   c.IssueType,
		Status:      c.Status,
		ResolvedAt:  c.ResolvedAt,
	}
	if c.Description != nil {
		n.Description = *c.Description
	}
	return n
}
