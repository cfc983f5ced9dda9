package memory

import (
	"context"
	"sync"
	"time"

	"github.com/example/rms/internal/models"
	"github.com/example/rms/internal/store"
)

// Store is an in-memory implementation of the storage interfaces with the
// same constraint behaviour as the SQL schema: unique customer emails and a
// complaint-to-customer foreign key. It is safe for concurrent use and is
// intended for tests and local development.
type Store struct {
	mu         sync.RWMutex
	customers  []models.Customer
	complaints []models.Complaint
	now        func() time.Time
	pingErr    error
}

var (
	_ store.CustomerStore  = (*Store)(nil)
	_ store.ComplaintStore = (*Store)(nil)
	_ store.Pinger         = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// SetClock replaces the time source used for created_at and resolved_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetPingError makes Ping fail with err; nil restores health.
func (s *Store) SetPingError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
}

// InsertOrphanComplaint stores a complaint without checking its customer,
// mimicking rows written while foreign keys were not enforced.
func (s *Store) InsertOrphanComplaint(c models.Complaint) models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uint(len(s.complaints) + 1)
	s.complaints = append(s.complaints, c)
	return c
}

func (s *Store) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pingErr
}

// CustomerStore implementation -------------------------------------------------

func (s *Store) CreateCustomer(_ context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.customers {
		if existing.Email == c.Email {
			return store.ErrDuplicateEmail
		}
	}

	c.ID = uint(len(s.customers) + 1)
	s.customers = append(s.customers, *c)
	return nil
}

func (s *Store) ListCustomers(context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// ComplaintStore implementation ------------------------------------------------

func (s *Store) CreateComplaint(_ context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customerLocked(c.CustomerID); !ok {
		return store.ErrUnknownCustomer
	}

	c.ID = uint(len(s.complaints) + 1)
	c.Status = models.ComplaintStatusOpen
	c.CreatedAt = s.now()
	c.ResolvedAt = nil
	s.complaints = append(s.complaints, *c)
	return nil
}

func (s *Store) GetComplaint(_ context.Context, id uint) (*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.complaintIndexLocked(id)
	if !ok {
		return nil, store.ErrNotFound
	}
	item := s.complaints[idx]
	return &item, nil
}

func (s *Store) UpdateComplaintStatus(_ context.Context, id uint, status *string) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.complaintIndexLocked(id)
	if !ok {
		return nil, store.ErrNotFound
	}

	item := s.complaints[idx]
	if status != nil {
		item.Status = *status
	}
	if item.IsResolved() {
		now := s.now()
		item.ResolvedAt = &now
	}
	s.complaints[idx] = item
	return &item, nil
}

func (s *Store) ListComplaints(context.Context) ([]models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out, nil
}

func (s *Store) ListComplaintViews(context.Context) ([]models.ComplaintView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ComplaintView{}
	for _, c := range s.complaints {
		customer, ok := s.customerLocked(c.CustomerID)
		if !ok {
			continue
		}
		out = append(out, models.ComplaintView{
			ID:           c.ID,
			CustomerName: customer.Name,
			IssueType:    c.IssueType,
			Status:       c.Status,
			CreatedAt:    c.CreatedAt,
			ResolvedAt:   c.ResolvedAt,
		})
	}
	return out, nil
}

func (s *Store) customerLocked(id uint) (models.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *Store) complaintIndexLocked(id uint) (int, bool) {
	for i, c := range s.complaints {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}
