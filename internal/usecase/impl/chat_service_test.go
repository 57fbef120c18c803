package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	"showroom/internal/infra/catalog"
	mockRepo "showroom/internal/mocks/repository"
	mockService "showroom/internal/mocks/service"
	"showroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatMocks struct {
	sessions *mockRepo.MockChatSessionRepository
	messages *mockRepo.MockChatMessageRepository
	model    *mockService.MockChatModel
}

func newChatService(t *testing.T) (usecase.ChatUsecase, *chatMocks) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Chat = config.ChatConfig{MaxMessageLength: 2000, MaxHistoryMessages: 20}

	knowledge, err := catalog.New()
	require.NoError(t, err)

	mocks := &chatMocks{
		sessions: mockRepo.NewMockChatSessionRepository(t),
		messages: mockRepo.NewMockChatMessageRepository(t),
		model:    mockService.NewMockChatModel(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewChatService(cfg, mocks.sessions, mocks.messages, mocks.model, knowledge, logger)

	return svc, mocks
}

func TestSendMessage_NewSession(t *testing.T) {
	svc, mocks := newChatService(t)

	mocks.model.EXPECT().Enabled().Return(true)
	mocks.sessions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ChatSession")).Return(nil)
	mocks.messages.EXPECT().ListRecent(mock.Anything, mock.AnythingOfType("string"), 20).
		Return(nil, nil)
	mocks.model.EXPECT().Complete(mock.Anything, mock.Anything).Return("We carry four carport systems.", nil)
	mocks.messages.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	reply, err := svc.SendMessage(context.Background(), &usecase.ChatInput{Message: "What carports do you have?"})

	require.NoError(t, err)
	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, "We carry four carport systems.", reply.Message)
}

func TestSendMessage_ExistingSessionCarriesHistory(t *testing.T) {
	svc, mocks := newChatService(t)

	mocks.model.EXPECT().Enabled().Return(true)
	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "sess-1").
		Return(&entity.ChatSession{SessionID: "sess-1"}, nil)
	mocks.sessions.EXPECT().Touch(mock.Anything, "sess-1", mock.AnythingOfType("time.Time")).Return(nil)
	mocks.messages.EXPECT().ListRecent(mock.Anything, "sess-1", 20).Return([]*entity.ChatMessage{
		{SessionID: "sess-1", Role: entity.ChatRoleUser, Content: "Hi"},
		{SessionID: "sess-1", Role: entity.ChatRoleAssistant, Content: "Hello! How can I help?"},
	}, nil)

	var prompts []service.PromptMessage
	mocks.model.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, messages []service.PromptMessage) {
			prompts = messages
		}).Return("Sure thing.", nil)
	mocks.messages.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	reply, err := svc.SendMessage(context.Background(), &usecase.ChatInput{
		SessionID: "sess-1",
		Message:   "Tell me about pricing",
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", reply.SessionID)

	require.Len(t, prompts, 4)
	assert.Equal(t, service.PromptRoleSystem, prompts[0].Role)
	assert.Contains(t, prompts[0].Content, "KunkelWorks")
	assert.Equal(t, service.PromptRoleAssistant, prompts[2].Role)
	assert.Equal(t, "Tell me about pricing", prompts[3].Content)
}

func TestSendMessage_UnknownSessionRecreated(t *testing.T) {
	svc, mocks := newChatService(t)

	mocks.model.EXPECT().Enabled().Return(true)
	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "sess-gone").
		Return(nil, repository.ErrSessionNotFound)
	mocks.sessions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ChatSession")).Return(nil)
	mocks.messages.EXPECT().ListRecent(mock.Anything, "sess-gone", 20).Return(nil, nil)
	mocks.model.EXPECT().Complete(mock.Anything, mock.Anything).Return("Welcome back.", nil)
	mocks.messages.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	reply, err := svc.SendMessage(context.Background(), &usecase.ChatInput{
		SessionID: "sess-gone",
		Message:   "Hello again",
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-gone", reply.SessionID)
}

func TestSendMessage_Validation(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.SendMessage(context.Background(), &usecase.ChatInput{Message: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SendMessage(context.Background(), &usecase.ChatInput{
		Message: strings.Repeat("x", 2001),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSendMessage_ModelNotConfigured(t *testing.T) {
	svc, mocks := newChatService(t)

	mocks.model.EXPECT().Enabled().Return(false)

	_, err := svc.SendMessage(context.Background(), &usecase.ChatInput{Message: "Hello"})

	assert.ErrorIs(t, err, domainerrors.ErrChatNotConfigured)
}

func TestSendMessage_EmptyCompletionFallsBack(t *testing.T) {
	svc, mocks := newChatService(t)

	mocks.model.EXPECT().Enabled().Return(true)
	mocks.sessions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mocks.messages.EXPECT().ListRecent(mock.Anything, mock.Anything, 20).Return(nil, nil)
	mocks.model.EXPECT().Complete(mock.Anything, mock.Anything).Return("", nil)

	var persisted []*entity.ChatMessage
	mocks.messages.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, messages ...*entity.ChatMessage) {
			persisted = messages
		}).Return(nil)

	reply, err := svc.SendMessage(context.Background(), &usecase.ChatInput{Message: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply.Message)
	require.Len(t, persisted, 2)
	assert.Equal(t, entity.ChatRoleAssistant, persisted[1].Role)
	assert.Equal(t, fallbackReply, persisted[1].Content)
}
