// Package ratelimit implements the fixed-window throttle backed by the
// rate-limit counter store.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"

	"github.com/pkg/errors"
)

// fixedWindowLimiter implements service.RateLimiter with one counter row per
// category+client key. Windows are fixed, not sliding: the first request
// after a window closes resets the count and starts a new window.
type fixedWindowLimiter struct {
	repo  repository.RateLimitRepository
	rules map[string]config.RateLimitRule
	now   func() time.Time
}

// NewFixedWindowLimiter is the constructor for fixedWindowLimiter.
func NewFixedWindowLimiter(cfg *config.Config, repo repository.RateLimitRepository) service.RateLimiter {
	return &fixedWindowLimiter{
		repo: repo,
		rules: map[string]config.RateLimitRule{
			service.RateLimitMagicLink:    cfg.RateLimit.MagicLink,
			service.RateLimitListSessions: cfg.RateLimit.ListSessions,
		},
		now: time.Now,
	}
}

// Allow records one request and reports whether it stayed within the
// category's limit. The increment is persisted before the comparison, so
// rejected requests still count against the window.
func (l *fixedWindowLimiter) Allow(ctx context.Context, category, clientKey string) (bool, error) {
	rule, ok := l.rules[category]
	if !ok {
		return false, errors.Errorf("unknown rate limit category: %s", category)
	}

	now := l.now()
	key := fmt.Sprintf("rl:%s:%s", category, clientKey)

	counter, err := l.repo.Find(ctx, key)
	switch {
	case errors.Is(err, repository.ErrCounterNotFound):
		counter = &entity.RateLimitCounter{Key: key}
	case err != nil:
		return false, errors.Wrap(err, "find rate limit counter")
	}

	if counter.Count == 0 || !counter.WindowEnd.After(now) {
		counter.Count = 1
		counter.WindowEnd = now.Add(rule.Window)
	} else {
		counter.Count++
	}

	if err := l.repo.Upsert(ctx, counter); err != nil {
		return false, errors.Wrap(err, "upsert rate limit counter")
	}

	return counter.Count <= rule.Limit, nil
}
