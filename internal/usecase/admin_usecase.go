package usecase

import (
	"context"
	"time"
)

// LeadView is one lead as presented on the admin dashboard.
type LeadView struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Message          *string `json:"message"`
	ProductInterest  *string `json:"product_interest"`
	ProductSlug      *string `json:"product_slug"`
	SeriesSlug       *string `json:"series_slug"`
	ChatSessionID    *string `json:"chat_session_id"`
	Source           string  `json:"source"`
	VisualizerImage  *string `json:"visualizer_image,omitempty"`
	VisualizerConfig *string `json:"visualizer_config,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdminSessionView is one chat session in the admin listing. Sessions that
// already produced a lead are excluded from the listing; the lead view links
// to them instead.
type AdminSessionView struct {
	SessionID    string    `json:"session_id"`
	Email        *string   `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int64     `json:"message_count"`
}

// TranscriptMessage is one message in an admin transcript view.
type TranscriptMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is a full conversation for the admin dashboard.
type Transcript struct {
	SessionID string               `json:"session_id"`
	Messages  []*TranscriptMessage `json:"messages"`
}

// AdminUsecase backs the admin dashboard API.
type AdminUsecase interface {
	// Login exchanges the configured admin secret for a short-lived
	// access token.
	Login(secret string) (string, error)

	// ListLeads returns every captured lead, newest first.
	ListLeads(ctx context.Context) ([]*LeadView, error)

	// GetLead returns one lead with its visualizer payload.
	GetLead(ctx context.Context, id int64) (*LeadView, error)

	// ListChatSessions returns sessions without a lead, newest first,
	// with message counts.
	ListChatSessions(ctx context.Context) ([]*AdminSessionView, error)

	// GetTranscript returns the full message history of a session.
	GetTranscript(ctx context.Context, sessionID string) (*Transcript, error)
}
