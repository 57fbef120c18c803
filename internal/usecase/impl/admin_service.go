package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	"showroom/internal/errors"
	"showroom/internal/usecase"
)

type adminService struct {
	cfg      *config.Config
	tokens   service.TokenService
	leads    repository.LeadRepository
	sessions repository.ChatSessionRepository
	messages repository.ChatMessageRepository
	logger   *slog.Logger
}

// NewAdminService creates the admin dashboard usecase.
func NewAdminService(
	cfg *config.Config,
	tokens service.TokenService,
	leads repository.LeadRepository,
	sessions repository.ChatSessionRepository,
	messages repository.ChatMessageRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		cfg:      cfg,
		tokens:   tokens,
		leads:    leads,
		sessions: sessions,
		messages: messages,
		logger:   logger,
	}
}

func (s *adminService) Login(secret string) (string, error) {
	if s.cfg.Admin == nil || s.cfg.Admin.Secret == "" {
		return "", domainerrors.ErrAdminNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Admin.Secret)) != 1 {
		return "", domainerrors.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAdminToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}

	return token, nil
}

func (s *adminService) ListLeads(ctx context.Context) ([]*usecase.LeadView, error) {
	leads, err := s.leads.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list leads failed")
	}

	views := make([]*usecase.LeadView, 0, len(leads))
	for _, lead := range leads {
		// Listings omit the visualizer payload; it can be megabytes.
		views = append(views, leadView(lead, false))
	}

	return views, nil
}

func (s *adminService) GetLead(ctx context.Context, id int64) (*usecase.LeadView, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find lead failed")
	}

	return leadView(lead, true), nil
}

func (s *adminService) ListChatSessions(ctx context.Context) ([]*usecase.AdminSessionView, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list chat sessions failed")
	}

	linkedIDs, err := s.leads.ListLinkedSessionIDs(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list linked sessions failed")
	}
	linked := make(map[string]struct{}, len(linkedIDs))
	for _, id := range linkedIDs {
		linked[id] = struct{}{}
	}

	// Sessions already captured as a lead are reachable through the lead
	// view; the listing shows only open conversations.
	open := make([]*entity.ChatSession, 0, len(sessions))
	openIDs := make([]string, 0, len(sessions))
	for _, session := range sessions {
		if _, ok := linked[session.SessionID]; ok {
			continue
		}
		open = append(open, session)
		openIDs = append(openIDs, session.SessionID)
	}

	counts, err := s.messages.CountBySessions(ctx, openIDs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count chat messages failed")
	}

	views := make([]*usecase.AdminSessionView, 0, len(open))
	for _, session := range open {
		views = append(views, &usecase.AdminSessionView{
			SessionID:    session.SessionID,
			Email:        session.Email,
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
			MessageCount: counts[session.SessionID],
		})
	}

	return views, nil
}

func (s *adminService) GetTranscript(ctx context.Context, sessionID string) (*usecase.Transcript, error) {
	if _, err := s.sessions.FindBySessionID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find chat session failed")
	}

	messages, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "load transcript failed")
	}

	transcript := &usecase.Transcript{
		SessionID: sessionID,
		Messages:  make([]*usecase.TranscriptMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		transcript.Messages = append(transcript.Messages, &usecase.TranscriptMessage{
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return transcript, nil
}

func leadView(lead *entity.Lead, includeVisual bool) *usecase.LeadView {
	view := &usecase.LeadView{
		ID:              lead.ID,
		Name:            lead.Name,
		Email:           lead.Email,
		Phone:           lead.Phone,
		Message:         lead.Message,
		ProductInterest: lead.ProductInterest,
		ProductSlug:     lead.ProductSlug,
		SeriesSlug:      lead.SeriesSlug,
		ChatSessionID:   lead.ChatSessionID,
		Source:          string(lead.Source),
		CreatedAt:       lead.CreatedAt,
	}
	if includeVisual {
		view.VisualizerImage = lead.VisualizerImage
		view.VisualizerConfig = lead.VisualizerConfig
	}

	return view
}
