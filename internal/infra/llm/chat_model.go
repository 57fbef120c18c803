// Package llm adapts the hosted OpenAI models to the domain service
// contracts.
package llm

import (
	"context"
	"log/slog"
	"strings"

	"showroom/config"
	"showroom/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultChatModel = openai.GPT4o
	defaultMaxTokens = 1024
)

// chatModel implements service.ChatModel on the OpenAI chat completions API.
type chatModel struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    *slog.Logger
}

// NewChatModel is the constructor for chatModel. Without an API key the
// model reports disabled and the chat endpoint returns a service
// unavailable error.
func NewChatModel(cfg *config.Config, logger *slog.Logger) service.ChatModel {
	model := &chatModel{
		model:     defaultChatModel,
		maxTokens: defaultMaxTokens,
		logger:    logger,
	}

	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		logger.Warn("openai not configured, sales chat disabled")

		return model
	}

	model.client = openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.ChatModel != "" {
		model.model = cfg.OpenAI.ChatModel
	}
	if cfg.OpenAI.MaxTokens > 0 {
		model.maxTokens = cfg.OpenAI.MaxTokens
	}

	return model
}

// Enabled reports whether an API key is configured.
func (m *chatModel) Enabled() bool {
	return m.client != nil
}

// Complete sends the conversation and returns the assistant reply text.
func (m *chatModel) Complete(ctx context.Context, messages []service.PromptMessage) (string, error) {
	if m.client == nil {
		return "", errors.New("chat model is not configured")
	}

	request := openai.ChatCompletionRequest{
		Model:     m.model,
		MaxTokens: m.maxTokens,
	}
	for _, message := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	response, err := m.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}
	if len(response.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
