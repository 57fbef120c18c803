package ratelimit

import (
	"context"
	"testing"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	mockRepo "showroom/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.MagicLink = config.RateLimitRule{Limit: 3, Window: 15 * time.Minute}
	cfg.RateLimit.ListSessions = config.RateLimitRule{Limit: 10, Window: 15 * time.Minute}

	return cfg
}

func newTestLimiter(repo repository.RateLimitRepository, now time.Time) *fixedWindowLimiter {
	limiter := NewFixedWindowLimiter(testConfig(), repo).(*fixedWindowLimiter)
	limiter.now = func() time.Time { return now }

	return limiter
}

func TestFixedWindowLimiter_FirstRequestStartsWindow(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	now := time.Now()
	limiter := newTestLimiter(repo, now)

	ctx := context.Background()

	repo.EXPECT().
		Find(ctx, "rl:magic_link:203.0.113.9").
		Return(nil, repository.ErrCounterNotFound)

	repo.EXPECT().
		Upsert(ctx, &entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     1,
			WindowEnd: now.Add(15 * time.Minute),
		}).
		Return(nil)

	allowed, err := limiter.Allow(ctx, service.RateLimitMagicLink, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_RejectsOverLimit(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	now := time.Now()
	limiter := newTestLimiter(repo, now)

	ctx := context.Background()
	windowEnd := now.Add(10 * time.Minute)

	repo.EXPECT().
		Find(ctx, "rl:magic_link:203.0.113.9").
		Return(&entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     3,
			WindowEnd: windowEnd,
		}, nil)

	// The rejected request is still persisted.
	repo.EXPECT().
		Upsert(ctx, &entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     4,
			WindowEnd: windowEnd,
		}).
		Return(nil)

	allowed, err := limiter.Allow(ctx, service.RateLimitMagicLink, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestFixedWindowLimiter_AllowsAtLimit(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	now := time.Now()
	limiter := newTestLimiter(repo, now)

	ctx := context.Background()
	windowEnd := now.Add(10 * time.Minute)

	repo.EXPECT().
		Find(ctx, "rl:magic_link:203.0.113.9").
		Return(&entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     2,
			WindowEnd: windowEnd,
		}, nil)

	repo.EXPECT().
		Upsert(ctx, &entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     3,
			WindowEnd: windowEnd,
		}).
		Return(nil)

	allowed, err := limiter.Allow(ctx, service.RateLimitMagicLink, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_ExpiredWindowResets(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	now := time.Now()
	limiter := newTestLimiter(repo, now)

	ctx := context.Background()

	repo.EXPECT().
		Find(ctx, "rl:magic_link:203.0.113.9").
		Return(&entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     3,
			WindowEnd: now.Add(-time.Minute),
		}, nil)

	repo.EXPECT().
		Upsert(ctx, &entity.RateLimitCounter{
			Key:       "rl:magic_link:203.0.113.9",
			Count:     1,
			WindowEnd: now.Add(15 * time.Minute),
		}).
		Return(nil)

	allowed, err := limiter.Allow(ctx, service.RateLimitMagicLink, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_SeparateCategories(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	now := time.Now()
	limiter := newTestLimiter(repo, now)

	ctx := context.Background()

	repo.EXPECT().
		Find(ctx, "rl:list_sessions:203.0.113.9").
		Return(nil, repository.ErrCounterNotFound)

	repo.EXPECT().
		Upsert(ctx, &entity.RateLimitCounter{
			Key:       "rl:list_sessions:203.0.113.9",
			Count:     1,
			WindowEnd: now.Add(15 * time.Minute),
		}).
		Return(nil)

	allowed, err := limiter.Allow(ctx, service.RateLimitListSessions, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_UnknownCategory(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	limiter := newTestLimiter(repo, time.Now())

	allowed, err := limiter.Allow(context.Background(), "no_such_category", "203.0.113.9")
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestFixedWindowLimiter_StoreError(t *testing.T) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	limiter := newTestLimiter(repo, time.Now())

	ctx := context.Background()

	repo.EXPECT().
		Find(ctx, "rl:magic_link:203.0.113.9").
		Return(nil, errors.New("db error"))

	allowed, err := limiter.Allow(ctx, service.RateLimitMagicLink, "203.0.113.9")
	assert.Error(t, err)
	assert.False(t, allowed)
}
