// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"showroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when a magic-link token is unknown, expired,
// or already consumed. The three cases are deliberately indistinguishable so
// callers cannot confirm token existence.
var ErrTokenNotFound = errors.New("magic link token not found")

// MagicLinkRepository manages single-use email verification tokens.
type MagicLinkRepository interface {
	// Create persists a new token row.
	Create(ctx context.Context, token *entity.MagicLinkToken) error

	// Consume looks up an unexpired token by value and deletes it in the
	// same logical step, enforcing single use. Returns ErrTokenNotFound
	// for unknown, expired, or already-consumed tokens alike.
	Consume(ctx context.Context, token string, now time.Time) (*entity.MagicLinkToken, error)

	// DeleteExpired removes tokens past their expiry. Cleanup only; the
	// verification path never depends on it.
	DeleteExpired(ctx context.Context, now time.Time) error
}
