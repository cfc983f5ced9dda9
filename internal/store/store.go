package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/example/rms/internal/models"
)

var (
	// ErrNotFound is returned when a complaint id has no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a customer email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUnknownCustomer is returned when a complaint references a missing customer.
	ErrUnknownCustomer = errors.New("customer does not exist")
)

// Store is the storage handle shared by the HTTP handlers.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// New constructs Store around an open GORM connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Ping checks that the underlying connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateCustomer inserts c and fills in its generated ID.
func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// ListCustomers returns every customer in storage order.
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	items := []models.Customer{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return items, nil
}

// CreateComplaint inserts c as a new open complaint.
func (s *Store) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	c.Status = models.ComplaintStatusOpen
	c.CreatedAt = s.now()
	c.ResolvedAt = nil

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUnknownCustomer
		}
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

// GetComplaint loads a single complaint.
func (s *Store) GetComplaint(ctx context.Context, id uint) (*models.Complaint, error) {
	var item models.Complaint
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get complaint %d: %w", id, err)
	}
	return &item, nil
}

// UpdateComplaintStatus replaces the status when one is given. Whenever the
// resulting status is Resolved, resolved_at is set to the current time, so
// repeated Resolved updates move it forward. resolved_at is never cleared.
func (s *Store) UpdateComplaintStatus(ctx context.Context, id uint, status *string) (*models.Complaint, error) {
	item, err := s.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != nil {
		item.Status = *status
	}
	if item.IsResolved() {
		now := s.now()
		item.ResolvedAt = &now
	}

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("update complaint %d: %w", id, err)
	}
	return item, nil
}

// ListComplaints returns every complaint in storage order.
func (s *Store) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	items := []models.Complaint{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return items, nil
}

// ListComplaintViews inner-joins complaints with their customers. Complaints
// whose customer row is missing are left out.
func (s *Store) ListComplaintViews(ctx context.Context) ([]models.ComplaintView, error) {
	items := []models.ComplaintView{}
	err := s.db.WithContext(ctx).
		Table("complaint").
		Select("complaint.id, customer.name AS customer_name, complaint.issue_type, complaint.status, complaint.created_at, complaint.resolved_at").
		Joins("JOIN customer ON customer.id = complaint.customer_id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list complaint views: %w", err)
	}
	return items, nil
}
