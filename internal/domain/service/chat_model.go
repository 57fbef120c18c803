package service

import "context"

// PromptRole identifies the author of a prompt message sent to the model.
type PromptRole string

const (
	PromptRoleSystem    PromptRole = "system"
	PromptRoleUser      PromptRole = "user"
	PromptRoleAssistant PromptRole = "assistant"
)

// PromptMessage is one turn in the conversation sent to the hosted model.
type PromptMessage struct {
	Role    PromptRole
	Content string
}

// ChatModel relays a conversation to a hosted language model and returns the
// assistant's reply.
type ChatModel interface {
	// Enabled reports whether a model provider is configured.
	Enabled() bool

	// Complete sends the conversation and returns the assistant reply text.
	Complete(ctx context.Context, messages []PromptMessage) (string, error)
}
