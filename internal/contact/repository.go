package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for submission storage
type Repository interface {
	Create(ctx context.Context, req *CreateContactRequest) (*Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
}

// InMemoryRepository stores submissions in memory. Default when no database
// is configured; also used by tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	contacts map[string]*Contact
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{contacts: make(map[string]*Contact)}
}

// Create validates and stores a new submission.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateContactRequest) (*Contact, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &Contact{
		ID:                 uuid.New().String(),
		Type:               req.Type,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Service:            req.Service,
		BudgetRange:        req.BudgetRange,
		Timeline:           req.Timeline,
		PreferredDate:      req.PreferredDate,
		PreferredTime:      req.PreferredTime,
		Subject:            req.Subject,
		Message:            req.Message,
		ProjectDescription: req.ProjectDescription,
		Source:             req.Source,
		Language:           req.Language,
		CreatedAt:          time.Now().UTC(),
	}

	r.mu.Lock()
	r.contacts[c.ID] = c
	r.mu.Unlock()

	return c, nil
}

// GetByID retrieves a submission by ID.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}
