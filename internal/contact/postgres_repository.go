package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores submissions in the relational database.
type PostgresRepository struct {
	db Querier
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(db Querier) *PostgresRepository {
	if db == nil {
		panic("contact: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateContactRequest) (*Contact, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO contacts (
			id, type, first_name, last_name, email, phone, service,
			budget_range, timeline, preferred_date, preferred_time,
			subject, message, project_description, source, language
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Type,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Service,
		req.BudgetRange,
		req.Timeline,
		req.PreferredDate,
		req.PreferredTime,
		req.Subject,
		req.Message,
		req.ProjectDescription,
		req.Source,
		req.Language,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("contact: insert failed: %w", err)
	}

	return &Contact{
		ID:                 id.String(),
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
		CreatedAt:          createdAt,
	}, nil
}

// GetByID fetches a submission by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Contact, error) {
	query := `
		SELECT id, type, first_name, last_name, email, phone, service,
			budget_range, timeline, preferred_date, preferred_time,
			subject, message, project_description, source, language, created_at
		FROM contacts
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var c Contact
	if err := row.Scan(
		&c.ID,
		&c.Type,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Service,
		&c.BudgetRange,
		&c.Timeline,
		&c.PreferredDate,
		&c.PreferredTime,
		&c.Subject,
		&c.Message,
		&c.ProjectDescription,
		&c.Source,
		&c.Language,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("contact: select failed: %w", err)
	}
	return &c, nil
}
