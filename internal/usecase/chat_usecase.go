package usecase

import "context"

// ChatInput is one visitor message to the sales chat.
type ChatInput struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatReply is the assistant's answer, tagged with the session it belongs to.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatUsecase relays visitor messages to the product-grounded sales model.
type ChatUsecase interface {
	// SendMessage ensures the session exists, relays the conversation to
	// the model with recent history, and persists both turns.
	SendMessage(ctx context.Context, input *ChatInput) (*ChatReply, error)
}
