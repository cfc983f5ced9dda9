package store

import (
	"context"

	"github.com/example/rms/internal/models"
)

// CustomerStore persists customers.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, c *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// ComplaintStore persists complaints and produces the joined read model.
type ComplaintStore interface {
	CreateComplaint(ctx context.Context, c *models.Complaint) error
	GetComplaint(ctx context.Context, id uint) (*models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id uint, status *string) (*models.Complaint, error)
	ListComplaints(ctx context.Context) ([]models.Complaint, error)
	ListComplaintViews(ctx context.Context) ([]models.ComplaintView, error)
}

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ CustomerStore  = (*Store)(nil)
	_ ComplaintStore = (*Store)(nil)
	_ Pinger         = (*Store)(nil)
)
