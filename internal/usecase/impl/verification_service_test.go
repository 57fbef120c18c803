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
	"showroom/internal/domain/service"
	mockRepo "showroom/internal/mocks/repository"
	mockService "showroom/internal/mocks/service"
	"showroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verificationMocks struct {
	tokens   *mockRepo.MockMagicLinkRepository
	sessions *mockRepo.MockChatSessionRepository
	limiter  *mockService.MockRateLimiter
	signer   *mockService.MockCredentialSigner
	mailer   *mockService.MockMailSender
	qrcode   *mockService.MockQRCodeService
}

func newVerificationService(t *testing.T) (usecase.VerificationUsecase, *verificationMocks) {
	t.Helper()

	cfg := &config.Config{}
	cfg.MagicLink = config.MagicLinkConfig{
		BaseURL:   "https://example.com",
		TokenTTL:  15 * time.Minute,
		CookieTTL: 24 * time.Hour,
	}

	mocks := &verificationMocks{
		tokens:   mockRepo.NewMockMagicLinkRepository(t),
		sessions: mockRepo.NewMockChatSessionRepository(t),
		limiter:  mockService.NewMockRateLimiter(t),
		signer:   mockService.NewMockCredentialSigner(t),
		mailer:   mockService.NewMockMailSender(t),
		qrcode:   mockService.NewMockQRCodeService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewVerificationService(cfg, mocks.tokens, mocks.sessions,
		mocks.limiter, mocks.signer, mocks.mailer, mocks.qrcode, logger)

	return svc, mocks
}

func TestRequestMagicLink_EmailDisabledLogsLink(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitMagicLink, "203.0.113.9").Return(true, nil)

	var created *entity.MagicLinkToken
	mocks.tokens.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.MagicLinkToken")).
		Run(func(_ context.Context, token *entity.MagicLinkToken) {
			created = token
		}).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(false)

	err := svc.RequestMagicLink(context.Background(), &usecase.RequestMagicLinkInput{
		Email:     "Visitor@Example.com",
		Intent:    entity.IntentListSessions,
		ClientKey: "203.0.113.9",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "visitor@example.com", created.Email)
	assert.Equal(t, entity.IntentListSessions, created.Intent)
	assert.Nil(t, created.SessionID)
	assert.NotEmpty(t, created.Token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), created.ExpiresAt, 5*time.Second)
}

func TestRequestMagicLink_SendsEmailWithQRCode(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitMagicLink, mock.Anything).Return(true, nil)
	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "sess-1").
		Return(&entity.ChatSession{SessionID: "sess-1"}, nil)
	mocks.tokens.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(true)
	mocks.qrcode.EXPECT().GeneratePNG(mock.AnythingOfType("string")).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	var sent *service.OutboundEmail
	mocks.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("*service.OutboundEmail")).
		Run(func(_ context.Context, email *service.OutboundEmail) {
			sent = email
		}).Return(nil)

	err := svc.RequestMagicLink(context.Background(), &usecase.RequestMagicLinkInput{
		Email:     "visitor@example.com",
		Intent:    entity.IntentLinkSession,
		SessionID: "sess-1",
		ClientKey: "key",
	})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"visitor@example.com"}, sent.To)
	assert.Contains(t, sent.Subject, "Verify your email")
	assert.Contains(t, sent.HTML, "https://example.com/api/chat/verify?token=")
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "verify-qr.png", sent.Attachments[0].Filename)
}

func TestRequestMagicLink_RateLimited(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitMagicLink, mock.Anything).Return(false, nil)

	err := svc.RequestMagicLink(context.Background(), &usecase.RequestMagicLinkInput{
		Email:  "visitor@example.com",
		Intent: entity.IntentListSessions,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
}

func TestRequestMagicLink_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RequestMagicLinkInput
		wantErr error
	}{
		{
			name:    "invalid email",
			input:   &usecase.RequestMagicLinkInput{Email: "not-an-email", Intent: entity.IntentListSessions},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "invalid intent",
			input:   &usecase.RequestMagicLinkInput{Email: "a@b.co", Intent: "subscribe"},
			wantErr: domainerrors.ErrInvalidIntent,
		},
		{
			name:    "link intent without session",
			input:   &usecase.RequestMagicLinkInput{Email: "a@b.co", Intent: entity.IntentLinkSession},
			wantErr: domainerrors.ErrSessionIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newVerificationService(t)
			mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitMagicLink, mock.Anything).Return(true, nil)

			err := svc.RequestMagicLink(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestMagicLink_UnknownSessionCreatesNoToken(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitMagicLink, mock.Anything).Return(true, nil)
	mocks.sessions.EXPECT().FindBySessionID(mock.Anything, "no-such-session").
		Return(nil, repository.ErrSessionNotFound)

	err := svc.RequestMagicLink(context.Background(), &usecase.RequestMagicLinkInput{
		Email:     "visitor@example.com",
		Intent:    entity.IntentLinkSession,
		SessionID: "no-such-session",
	})

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	mocks.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyToken_ListIntentRedirectsWithEmail(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.tokens.EXPECT().Consume(mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).
		Return(&entity.MagicLinkToken{
			Token:  "tok-1",
			Email:  "visitor@example.com",
			Intent: entity.IntentListSessions,
		}, nil)
	mocks.signer.EXPECT().Sign("visitor@example.com").Return("signed-credential", nil)

	outcome, err := svc.VerifyToken(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.True(t, outcome.Verified())
	assert.Equal(t, "signed-credential", outcome.Credential)
	assert.Equal(t, "https://example.com/chat?email=visitor%40example.com", outcome.RedirectURL)
}

func TestVerifyToken_LinkIntentLinksSession(t *testing.T) {
	svc, mocks := newVerificationService(t)

	sessionID := "sess-1"
	mocks.tokens.EXPECT().Consume(mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).
		Return(&entity.MagicLinkToken{
			Token:     "tok-1",
			Email:     "visitor@example.com",
			Intent:    entity.IntentLinkSession,
			SessionID: &sessionID,
		}, nil)
	mocks.signer.EXPECT().Sign("visitor@example.com").Return("signed-credential", nil)
	mocks.sessions.EXPECT().UpdateEmail(mock.Anything, "sess-1", "visitor@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	outcome, err := svc.VerifyToken(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.True(t, outcome.Verified())
	assert.Equal(t, "https://example.com/chat?linked=1", outcome.RedirectURL)
}

func TestVerifyToken_MissingSessionStillVerifies(t *testing.T) {
	svc, mocks := newVerificationService(t)

	sessionID := "sess-gone"
	mocks.tokens.EXPECT().Consume(mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).
		Return(&entity.MagicLinkToken{
			Token:     "tok-1",
			Email:     "visitor@example.com",
			Intent:    entity.IntentLinkSession,
			SessionID: &sessionID,
		}, nil)
	mocks.signer.EXPECT().Sign("visitor@example.com").Return("signed-credential", nil)
	mocks.sessions.EXPECT().UpdateEmail(mock.Anything, "sess-gone", "visitor@example.com", mock.AnythingOfType("time.Time")).
		Return(repository.ErrSessionNotFound)

	outcome, err := svc.VerifyToken(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.True(t, outcome.Verified())
	assert.Equal(t, "https://example.com/chat?linked=1", outcome.RedirectURL)
}

func TestVerifyToken_UnknownTokenRedirectsToError(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.tokens.EXPECT().Consume(mock.Anything, "bogus", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrTokenNotFound)

	outcome, err := svc.VerifyToken(context.Background(), "bogus")

	require.NoError(t, err)
	assert.False(t, outcome.Verified())
	assert.Equal(t, "https://example.com/chat?error=expired", outcome.RedirectURL)
}

func TestVerifyToken_EmptyTokenRedirectsToError(t *testing.T) {
	svc, _ := newVerificationService(t)

	outcome, err := svc.VerifyToken(context.Background(), "  ")

	require.NoError(t, err)
	assert.False(t, outcome.Verified())
	assert.Equal(t, "https://example.com/chat?error=expired", outcome.RedirectURL)
}

func TestLinkSession_Success(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.signer.EXPECT().Verify("credential").Return("visitor@example.com", true)
	mocks.sessions.EXPECT().UpdateEmail(mock.Anything, "sess-1", "visitor@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := svc.LinkSession(context.Background(), &usecase.LinkSessionInput{
		SessionID:  "sess-1",
		Email:      "Visitor@Example.com",
		Credential: "credential",
	})

	assert.NoError(t, err)
}

func TestLinkSession_EmailMismatch(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.signer.EXPECT().Verify("credential").Return("other@example.com", true)

	err := svc.LinkSession(context.Background(), &usecase.LinkSessionInput{
		SessionID:  "sess-1",
		Email:      "visitor@example.com",
		Credential: "credential",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestLinkSession_NoCredential(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.signer.EXPECT().Verify("").Return("", false)

	err := svc.LinkSession(context.Background(), &usecase.LinkSessionInput{
		SessionID: "sess-1",
		Email:     "visitor@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestLinkSession_SessionNotFound(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.signer.EXPECT().Verify("credential").Return("visitor@example.com", true)
	mocks.sessions.EXPECT().UpdateEmail(mock.Anything, "sess-1", "visitor@example.com", mock.AnythingOfType("time.Time")).
		Return(repository.ErrSessionNotFound)

	err := svc.LinkSession(context.Background(), &usecase.LinkSessionInput{
		SessionID:  "sess-1",
		Email:      "visitor@example.com",
		Credential: "credential",
	})

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestListSessions_Success(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitListSessions, "key").Return(true, nil)
	mocks.sessions.EXPECT().ListByEmail(mock.Anything, "visitor@example.com").Return([]*entity.ChatSession{
		{SessionID: "sess-2"},
		{SessionID: "sess-1"},
	}, nil)

	summaries, err := svc.ListSessions(context.Background(), "visitor@example.com", "key")

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "sess-2", summaries[0].SessionID)
}

func TestListSessions_RateLimited(t *testing.T) {
	svc, mocks := newVerificationService(t)

	mocks.limiter.EXPECT().Allow(mock.Anything, service.RateLimitListSessions, "key").Return(false, nil)

	_, err := svc.ListSessions(context.Background(), "visitor@example.com", "key")

	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
}
