package repository

import (
	"context"
	"time"

	"showroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a chat session does not exist.
var ErrSessionNotFound = errors.New("chat session not found")

// ChatSessionRepository manages visitor conversation records.
type ChatSessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.ChatSession) error

	// FindBySessionID returns a session by its client-visible identifier,
	// or ErrSessionNotFound.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.ChatSession, error)

	// Touch bumps the session's updated-at timestamp.
	Touch(ctx context.Context, sessionID string, now time.Time) error

	// UpdateEmail sets the session's owner email, establishing ownership.
	// Returns ErrSessionNotFound when no row matches.
	UpdateEmail(ctx context.Context, sessionID, email string, now time.Time) error

	// ListByEmail returns sessions owned by an email, most recently
	// active first.
	ListByEmail(ctx context.Context, email string) ([]*entity.ChatSession, error)

	// ListAll returns every session, most recently active first.
	ListAll(ctx context.Context) ([]*entity.ChatSession, error)
}

// ChatMessageRepository manages persisted chat utterances.
type ChatMessageRepository interface {
	// Append persists messages in order.
	Append(ctx context.Context, messages ...*entity.ChatMessage) error

	// ListRecent returns the last limit messages of a session in
	// chronological order.
	ListRecent(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error)

	// ListBySession returns the full transcript in chronological order.
	ListBySession(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)

	// CountBySessions returns message counts keyed by session ID.
	CountBySessions(ctx context.Context, sessionIDs []string) (map[string]int64, error)
}
