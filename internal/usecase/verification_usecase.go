// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"showroom/internal/domain/entity"
)

// RequestMagicLinkInput defines the data required to issue a magic link.
type RequestMagicLinkInput struct {
	Email     string        `json:"email"`
	Intent    entity.Intent `json:"intent"`
	SessionID string        `json:"session_id,omitempty"`

	// ClientKey identifies the caller for rate limiting; filled from the
	// request by the delivery layer, never by the client.
	ClientKey string `json:"-"`
}

// VerifyOutcome is the result of consuming a magic-link token. Verification
// never errors toward the visitor: failures carry only the error redirect.
type VerifyOutcome struct {
	// RedirectURL is where the visitor's browser is sent. Set on every
	// outcome; never contains the token.
	RedirectURL string

	// Credential is the signed verified-email cookie value. Empty when
	// verification failed.
	Credential string
}

// Verified reports whether the outcome carries a credential to set.
func (o *VerifyOutcome) Verified() bool {
	return o.Credential != ""
}

// LinkSessionInput binds a chat session to an already-verified email.
type LinkSessionInput struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`

	// Credential is the raw verified-email cookie presented by the caller.
	Credential string `json:"-"`
}

// SessionSummary is one chat session in a visitor-facing listing.
type SessionSummary struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VerificationUsecase drives the magic-link email verification flows.
type VerificationUsecase interface {
	// RequestMagicLink validates the request, enforces the magic_link
	// rate limit, persists a token, and dispatches the verification email.
	RequestMagicLink(ctx context.Context, input *RequestMagicLinkInput) error

	// VerifyToken consumes a token and returns the redirect outcome. The
	// error return covers storage failures only; unknown, expired, and
	// malformed tokens all produce the error-redirect outcome.
	VerifyToken(ctx context.Context, token string) (*VerifyOutcome, error)

	// VerifiedEmail extracts the verified email from a credential, if any.
	VerifiedEmail(credential string) (string, bool)

	// LinkSession binds a session to the email, requiring a credential
	// that matches the claimed email.
	LinkSession(ctx context.Context, input *LinkSessionInput) error

	// ListSessions returns the sessions owned by an email, enforcing the
	// list_sessions rate limit.
	ListSessions(ctx context.Context, email, clientKey string) ([]*SessionSummary, error)
}
