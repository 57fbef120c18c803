// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	"showroom/internal/errors"
	"showroom/internal/usecase"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type verificationService struct {
	cfg      *config.Config
	tokens   repository.MagicLinkRepository
	sessions repository.ChatSessionRepository
	limiter  service.RateLimiter
	signer   service.CredentialSigner
	mailer   service.MailSender
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewVerificationService creates the magic-link verification usecase.
func NewVerificationService(
	cfg *config.Config,
	tokens repository.MagicLinkRepository,
	sessions repository.ChatSessionRepository,
	limiter service.RateLimiter,
	signer service.CredentialSigner,
	mailer service.MailSender,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		cfg:      cfg,
		tokens:   tokens,
		sessions: sessions,
		limiter:  limiter,
		signer:   signer,
		mailer:   mailer,
		qrcode:   qrcode,
		logger:   logger,
	}
}

func (s *verificationService) RequestMagicLink(ctx context.Context, input *usecase.RequestMagicLinkInput) error {
	// Throttle before validation so malformed requests burn quota too.
	allowed, err := s.limiter.Allow(ctx, service.RateLimitMagicLink, input.ClientKey)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "rate limit check failed")
	}
	if !allowed {
		return domainerrors.ErrRateLimited
	}

	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail
	}
	if !input.Intent.Valid() {
		return domainerrors.ErrInvalidIntent
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if input.Intent == entity.IntentLinkSession {
		if sessionID == "" {
			return domainerrors.ErrSessionIDRequired
		}

		// The session must exist before a token is minted for it;
		// otherwise a mistyped id would mail out a dead link.
		if _, err := s.sessions.FindBySessionID(ctx, sessionID); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "find chat session failed")
		}
	}

	now := time.Now()
	token := &entity.MagicLinkToken{
		Token:     uuid.NewString(),
		Email:     email,
		Intent:    input.Intent,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.MagicLink.TokenTTL),
	}
	if input.Intent == entity.IntentLinkSession {
		token.SessionID = &sessionID
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create magic link token failed")
	}

	verifyURL := s.cfg.MagicLink.BaseURL + "/api/chat/verify?token=" + url.QueryEscape(token.Token)

	if !s.mailer.Enabled() {
		// Local development path: no provider configured, surface the
		// link in the logs so the flow stays testable end to end.
		s.logger.InfoContext(ctx, "email sending disabled, printing magic link",
			slog.String("email", email),
			slog.String("url", verifyURL))

		return nil
	}

	if err := s.sendVerificationEmail(ctx, email, verifyURL); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

func (s *verificationService) sendVerificationEmail(ctx context.Context, email, verifyURL string) error {
	minutes := int(s.cfg.MagicLink.TokenTTL.Minutes())

	outbound := &service.OutboundEmail{
		To:      []string{email},
		Subject: "Verify your email for KunkelWorks",
		HTML: fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Verify your email</h2>
  <p>Click the button below to verify your email address and continue your conversation with KunkelWorks.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background: #1a1a1a; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Verify email</a>
  </p>
  <p>Or scan the attached QR code on another device.</p>
  <p style="color: #666; font-size: 13px;">This link expires in %d minutes. If you didn't request it, you can safely ignore this email.</p>
</div>`, verifyURL, minutes),
	}

	// The QR code is a convenience; a failure to render it should not
	// block verification.
	if png, err := s.qrcode.GeneratePNG(verifyURL); err != nil {
		s.logger.WarnContext(ctx, "failed to render verification qr code", slog.Any("error", err))
	} else {
		outbound.Attachments = append(outbound.Attachments, service.EmailAttachment{
			Filename: "verify-qr.png",
			Content:  png,
		})
	}

	return s.mailer.Send(ctx, outbound)
}

func (s *verificationService) VerifyToken(ctx context.Context, token string) (*usecase.VerifyOutcome, error) {
	failure := &usecase.VerifyOutcome{RedirectURL: s.cfg.MagicLink.BaseURL + "/chat?error=expired"}

	token = strings.TrimSpace(token)
	if token == "" {
		return failure, nil
	}

	record, err := s.tokens.Consume(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return failure, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "consume magic link token failed")
	}

	credential, err := s.signer.Sign(record.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign credential: %w", err)
	}

	redirect := s.cfg.MagicLink.BaseURL + "/chat?email=" + url.QueryEscape(record.Email)
	if record.Intent == entity.IntentLinkSession && record.SessionID != nil {
		if err := s.sessions.UpdateEmail(ctx, *record.SessionID, record.Email, time.Now()); err != nil {
			if !errors.Is(err, repository.ErrSessionNotFound) {
				return nil, domainerrors.NewDatabaseExecuteError(err, "link session failed")
			}
			// The session may have been pruned since the email was
			// sent; the verification itself still stands.
			s.logger.WarnContext(ctx, "verified token referenced missing session",
				slog.String("sessionID", *record.SessionID))
		}
		redirect = s.cfg.MagicLink.BaseURL + "/chat?linked=1"
	}

	return &usecase.VerifyOutcome{RedirectURL: redirect, Credential: credential}, nil
}

func (s *verificationService) VerifiedEmail(credential string) (string, bool) {
	return s.signer.Verify(credential)
}

func (s *verificationService) LinkSession(ctx context.Context, input *usecase.LinkSessionInput) error {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return domainerrors.ErrSessionIDRequired
	}

	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail
	}

	verifiedEmail, ok := s.signer.Verify(input.Credential)
	if !ok || normalizeEmail(verifiedEmail) != email {
		return domainerrors.ErrEmailNotVerified
	}

	if err := s.sessions.UpdateEmail(ctx, sessionID, email, time.Now()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "link session failed")
	}

	return nil
}

func (s *verificationService) ListSessions(ctx context.Context, email, clientKey string) ([]*usecase.SessionSummary, error) {
	allowed, err := s.limiter.Allow(ctx, service.RateLimitListSessions, clientKey)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "rate limit check failed")
	}
	if !allowed {
		return nil, domainerrors.ErrRateLimited
	}

	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, domainerrors.ErrInvalidEmail
	}

	sessions, err := s.sessions.ListByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list sessions failed")
	}

	summaries := make([]*usecase.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, &usecase.SessionSummary{
			SessionID: session.SessionID,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}

	return summaries, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
