package repository

import (
	"context"

	"showroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLeadNotFound is returned when a lead does not exist.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository manages captured quote requests.
type LeadRepository interface {
	// Create persists a new lead and fills in its generated ID.
	Create(ctx context.Context, lead *entity.Lead) error

	// FindByID returns a lead by ID, or ErrLeadNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)

	// ListAll returns every lead, newest first.
	ListAll(ctx context.Context) ([]*entity.Lead, error)

	// ListLinkedSessionIDs returns the distinct chat session IDs already
	// referenced by a lead.
	ListLinkedSessionIDs(ctx context.Context) ([]string, error)
}
