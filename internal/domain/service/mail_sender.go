package service

import "context"

// EmailAttachment is an inline or regular attachment on an outbound email.
type EmailAttachment struct {
	Filename  string
	Content   []byte
	ContentID string // Set for inline (cid-referenced) attachments.
}

// OutboundEmail is a provider-agnostic transactional email.
type OutboundEmail struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}

// MailSender dispatches transactional email.
type MailSender interface {
	// Enabled reports whether an email provider is configured. Callers
	// may degrade gracefully (e.g. log a verification URL) when it is not.
	Enabled() bool

	// Send dispatches the email. Calling Send on a disabled sender is an
	// error; check Enabled first.
	Send(ctx context.Context, email *OutboundEmail) error
}
