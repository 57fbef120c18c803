package entity

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatSession represents one visitor conversation with the sales assistant.
// Email stays nil until ownership is established, either by a direct link
// action with a verified cookie or by magic-link verification.
type ChatSession struct {
	ID        int64
	SessionID string  // Client-visible opaque identifier (UUID).
	Email     *string // Verified owner email; nil while anonymous.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is a single persisted utterance within a session.
type ChatMessage struct {
	ID        int64
	SessionID string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
