// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Intent determines the side effect applied when a magic-link token is verified.
type Intent string

const (
	// IntentLinkSession binds the token's email to a chat session on verification.
	IntentLinkSession Intent = "link_session"

	// IntentListSessions only confirms the email so the client can list its sessions.
	IntentListSessions Intent = "list_sessions"
)

// Valid reports whether the intent is one of the recognized values.
func (i Intent) Valid() bool {
	return i == IntentLinkSession || i == IntentListSessions
}

// MagicLinkToken represents a single-use, time-limited email verification token.
// Possession of the token proves receipt of the email it was sent to.
type MagicLinkToken struct {
	ID        int64     // Database identifier.
	Token     string    // Opaque random value; lookup key and bearer secret.
	Email     string    // Target address, not yet verified at creation time.
	Intent    Intent    // Post-verification side effect selector.
	SessionID *string   // Chat session to link; set only when Intent is link_session.
	CreatedAt time.Time // Issuance instant.
	ExpiresAt time.Time // Absolute expiry; tokens have a fixed lifetime from creation.
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *MagicLinkToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// RateLimitCounter is one fixed-window counter row, keyed by action category
// and client identifier.
type RateLimitCounter struct {
	Key       string    // Composite key, e.g. "rl:magic_link:203.0.113.9".
	Count     int       // Requests observed in the current window.
	WindowEnd time.Time // Instant the current fixed window closes.
}
