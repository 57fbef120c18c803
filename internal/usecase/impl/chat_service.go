package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	"showroom/internal/errors"
	"showroom/internal/infra/catalog"
	"showroom/internal/usecase"

	"github.com/google/uuid"
)

const chatSystemPrompt = `You are the sales assistant for KunkelWorks, a distributor of authentic Japanese aluminum exterior systems (carports, patio covers, gates, fences, and entry doors) manufactured by Sankyo-Tateyama of Takaoka, Japan.

Answer questions using only the product knowledge below. Be concise and helpful. When a visitor shows buying interest, suggest requesting a quote. Never invent prices or specifications that are not in the product knowledge; if you do not know, say so and offer to connect the visitor with the team.

`

// fallbackReply is returned when the model produces an empty completion.
const fallbackReply = "I'm sorry, I wasn't able to generate a response just now. Please try again, or request a quote and our team will follow up directly."

type chatService struct {
	cfg      *config.Config
	sessions repository.ChatSessionRepository
	messages repository.ChatMessageRepository
	model    service.ChatModel
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// NewChatService creates the sales-chat usecase.
func NewChatService(
	cfg *config.Config,
	sessions repository.ChatSessionRepository,
	messages repository.ChatMessageRepository,
	model service.ChatModel,
	catalog *catalog.Catalog,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		cfg:      cfg,
		sessions: sessions,
		messages: messages,
		model:    model,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *chatService) SendMessage(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatReply, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message is required")
	}
	if len(message) > s.cfg.Chat.MaxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message is too long")
	}

	if !s.model.Enabled() {
		return nil, domainerrors.ErrChatNotConfigured
	}

	sessionID, err := s.ensureSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	history, err := s.messages.ListRecent(ctx, sessionID, s.cfg.Chat.MaxHistoryMessages)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "load chat history failed")
	}

	prompts := make([]service.PromptMessage, 0, len(history)+2)
	prompts = append(prompts, service.PromptMessage{
		Role:    service.PromptRoleSystem,
		Content: chatSystemPrompt + s.catalog.Summary(),
	})
	for _, msg := range history {
		role := service.PromptRoleUser
		if msg.Role == entity.ChatRoleAssistant {
			role = service.PromptRoleAssistant
		}
		prompts = append(prompts, service.PromptMessage{Role: role, Content: msg.Content})
	}
	prompts = append(prompts, service.PromptMessage{Role: service.PromptRoleUser, Content: message})

	reply, err := s.model.Complete(ctx, prompts)
	if err != nil {
		s.logger.ErrorContext(ctx, "chat completion failed",
			slog.String("sessionID", sessionID),
			slog.Any("error", err))

		return nil, domainerrors.ErrServiceUnavailable.WrapMessage("chat model request failed")
	}
	if reply == "" {
		reply = fallbackReply
	}

	now := time.Now()
	err = s.messages.Append(ctx,
		&entity.ChatMessage{SessionID: sessionID, Role: entity.ChatRoleUser, Content: message, CreatedAt: now},
		&entity.ChatMessage{SessionID: sessionID, Role: entity.ChatRoleAssistant, Content: reply, CreatedAt: now.Add(time.Millisecond)},
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "persist chat messages failed")
	}

	return &usecase.ChatReply{SessionID: sessionID, Message: reply}, nil
}

// ensureSession resolves the session for this turn, creating one when the
// client has none (or presents an unknown ID, e.g. after a data reset).
func (s *chatService) ensureSession(ctx context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	now := time.Now()

	if sessionID != "" {
		_, err := s.sessions.FindBySessionID(ctx, sessionID)
		switch {
		case err == nil:
			if err := s.sessions.Touch(ctx, sessionID, now); err != nil {
				return "", domainerrors.NewDatabaseExecuteError(err, "touch chat session failed")
			}

			return sessionID, nil
		case !errors.Is(err, repository.ErrSessionNotFound):
			return "", domainerrors.NewDatabaseExecuteError(err, "find chat session failed")
		}
	} else {
		sessionID = uuid.NewString()
	}

	session := &entity.ChatSession{
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "create chat session failed")
	}

	return sessionID, nil
}
