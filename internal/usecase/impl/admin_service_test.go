package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	mockRepo "showroom/internal/mocks/repository"
	mockService "showroom/internal/mocks/service"
	"showroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	tokens   *mockService.MockTokenService
	leads    *mockRepo.MockLeadRepository
	sessions *mockRepo.MockChatSessionRepository
	messages *mockRepo.MockChatMessageRepository
}

func newAdminService(t *testing.T, admin *config.AdminConfig) (usecase.AdminUsecase, *adminMocks) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Admin = admin

	mocks := &adminMocks{
		tokens:   mockService.NewMockTokenService(t),
		leads:    mockRepo.NewMockLeadRepository(t),
		sessions: mockRepo.NewMockChatSessionRepository(t),
		messages: mockRepo.NewMockChatMessageRepository(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAdminService(cfg, mocks.tokens, mocks.leads, mocks.sessions, mocks.messages, logger)

	return svc, mocks
}

func TestAdminLogin_Success(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "hunter2", JWTSecret: "k"})

	mocks.tokens.EXPECT().GenerateAdminToken().Return("jwt-token", nil)

	token, err := svc.Login("hunter2")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestAdminLogin_WrongSecret(t *testing.T) {
	svc, _ := newAdminService(t, &config.AdminConfig{Secret: "hunter2"})

	_, err := svc.Login("wrong")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminLogin_NotConfigured(t *testing.T) {
	svc, _ := newAdminService(t, nil)

	_, err := svc.Login("anything")

	assert.ErrorIs(t, err, domainerrors.ErrAdminNotConfigured)
}

func TestListLeads_OmitsVisualizerPayload(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	image := "data:image/png;base64,ZmFrZQ=="
	email := "pat@example.com"
	mocks.leads.EXPECT().ListAll(mock.Anything).Return([]*entity.Lead{
		{ID: 2, Name: "Pat", Email: &email, Source: entity.LeadSourceChat, VisualizerImage: &image},
		{ID: 1, Name: "Sam", Source: entity.LeadSourceForm},
	}, nil)

	views, err := svc.ListLeads(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, "chat", views[0].Source)
	assert.Nil(t, views[0].VisualizerImage)
}

func TestGetLead_IncludesVisualizerPayload(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	image := "data:image/png;base64,ZmFrZQ=="
	cfgJSON := `{"carportName":"U-Style Flat"}`
	mocks.leads.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Lead{
		ID:               7,
		Name:             "Pat",
		Source:           entity.LeadSourceForm,
		VisualizerImage:  &image,
		VisualizerConfig: &cfgJSON,
	}, nil)

	view, err := svc.GetLead(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, view.VisualizerImage)
	assert.Equal(t, image, *view.VisualizerImage)
	assert.Equal(t, cfgJSON, *view.VisualizerConfig)
}

func TestGetLead_NotFound(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	mocks.leads.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrLeadNotFound)

	_, err := svc.GetLead(context.Background(), 99)

	assert.ErrorIs(t, err, domainerrors.ErrLeadNotFound)
}

func TestListChatSessions_ExcludesLeadLinkedSessions(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	email := "pat@example.com"
	now := time.Now()
	mocks.sessions.EXPECT().ListAll(mock.Anything).Return([]*entity.ChatSession{
		{SessionID: "sess-open", Email: &email, CreatedAt: now, UpdatedAt: now},
		{SessionID: "sess-captured", CreatedAt: now, UpdatedAt: now},
	}, nil)
	mocks.leads.EXPECT().ListLinkedSessionIDs(mock.Anything).Return([]string{"sess-captured"}, nil)
	mocks.messages.EXPECT().CountBySessions(mock.Anything, []string{"sess-open"}).
		Return(map[string]int64{"sess-open": 6}, nil)

	views, err := svc.ListChatSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "sess-open", views[0].SessionID)
	assert.Equal(t, int64(6), views[0].MessageCount)
	require.NotNil(t, views[0].Email)
	assert.Equal(t, "pat@example.com", *views[0].Email)
}

func TestGetTranscript(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "sess-1").
		Return(&entity.ChatSession{SessionID: "sess-1"}, nil)
	mocks.messages.EXPECT().ListBySession(mock.Anything, "sess-1").Return([]*entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: "Hi"},
		{Role: entity.ChatRoleAssistant, Content: "Hello!"},
	}, nil)

	transcript, err := svc.GetTranscript(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "sess-1", transcript.SessionID)
	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, "user", transcript.Messages[0].Role)
	assert.Equal(t, "Hello!", transcript.Messages[1].Content)
}

func TestGetTranscript_SessionNotFound(t *testing.T) {
	svc, mocks := newAdminService(t, &config.AdminConfig{Secret: "s"})

	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "missing").
		Return(nil, repository.ErrSessionNotFound)

	_, err := svc.GetTranscript(context.Background(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
