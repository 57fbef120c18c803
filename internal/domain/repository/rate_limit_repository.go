package repository

import (
	"context"
	"time"

	"showroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCounterNotFound is returned when no counter row exists for a key.
var ErrCounterNotFound = errors.New("rate limit counter not found")

// RateLimitRepository stores fixed-window request counters. Rows are upserted
// on every check and reused window over window; there is no automatic
// eviction (DeleteExpired exists for operator-driven cleanup).
type RateLimitRepository interface {
	// Find returns the counter for a key, or ErrCounterNotFound.
	Find(ctx context.Context, key string) (*entity.RateLimitCounter, error)

	// Upsert inserts or replaces the counter row for counter.Key.
	Upsert(ctx context.Context, counter *entity.RateLimitCounter) error

	// DeleteExpired removes counters whose window closed before now.
	DeleteExpired(ctx context.Context, now time.Time) error
}
