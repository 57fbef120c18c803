// Package mail dispatches transactional email through Resend.
package mail

import (
	"context"
	"log/slog"

	"showroom/config"
	"showroom/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// resendSender implements service.MailSender on the Resend API. When no API
// key is configured the sender reports disabled and callers degrade (the
// verification flow logs the link instead of mailing it).
type resendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewResendSender is the constructor for resendSender.
func NewResendSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	sender := &resendSender{logger: logger}

	if cfg.Resend == nil || cfg.Resend.APIKey == "" {
		logger.Warn("resend not configured, outbound email disabled")

		return sender
	}

	sender.client = resend.NewClient(cfg.Resend.APIKey)
	sender.from = cfg.Resend.FromEmail

	return sender
}

// Enabled reports whether an API key is configured.
func (s *resendSender) Enabled() bool {
	return s.client != nil
}

// Send dispatches the email through Resend.
func (s *resendSender) Send(ctx context.Context, email *service.OutboundEmail) error {
	if s.client == nil {
		return errors.New("mail sender is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	for _, attachment := range email.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:  attachment.Filename,
			Content:   attachment.Content,
			ContentId: attachment.ContentID,
		})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "send email")
	}

	s.logger.DebugContext(ctx, "email dispatched",
		slog.String("emailID", sent.Id),
		slog.String("subject", email.Subject))

	return nil
}
