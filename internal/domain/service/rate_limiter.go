package service

import "context"

// Rate-limit action categories.
const (
	RateLimitMagicLink    = "magic_link"
	RateLimitListSessions = "list_sessions"
)

// RateLimiter is a fixed-window request throttle keyed by action category and
// client identifier. It is a courtesy throttle, not a security boundary.
type RateLimiter interface {
	// Allow records one request and reports whether it is within the
	// category's limit. Rejected requests still count against the limit.
	// A non-nil error indicates a store failure, not a rejection.
	Allow(ctx context.Context, category, clientKey string) (bool, error)
}
