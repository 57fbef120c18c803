package impl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/domain/service"
	"showroom/internal/usecase"
)

// maxVisualizerImageBytes caps the inline rendered-visual data URL a quote
// may carry. Oversized images are dropped, not rejected.
const maxVisualizerImageBytes = 2 * 1024 * 1024

const visualCID = "carport-visual"

type leadService struct {
	cfg    *config.Config
	leads  repository.LeadRepository
	mailer service.MailSender
	logger *slog.Logger
}

// NewLeadService creates the quote-capture usecase.
func NewLeadService(
	cfg *config.Config,
	leads repository.LeadRepository,
	mailer service.MailSender,
	logger *slog.Logger,
) usecase.LeadUsecase {
	return &leadService{
		cfg:    cfg,
		leads:  leads,
		mailer: mailer,
		logger: logger,
	}
}

func (s *leadService) SubmitQuote(ctx context.Context, input *usecase.QuoteInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	email := normalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email or phone is required")
	}
	if email != "" && !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail
	}

	lead := &entity.Lead{
		Name:            name,
		Email:           optionalString(email),
		Phone:           optionalString(phone),
		Message:         optionalString(strings.TrimSpace(input.Message)),
		ProductInterest: optionalString(strings.TrimSpace(input.ProductInterest)),
		ProductSlug:     optionalString(strings.TrimSpace(input.ProductSlug)),
		SeriesSlug:      optionalString(strings.TrimSpace(input.SeriesSlug)),
		ChatSessionID:   optionalString(strings.TrimSpace(input.SessionID)),
		Source:          entity.LeadSourceForm,
		CreatedAt:       time.Now(),
	}
	if input.Source == string(entity.LeadSourceChat) {
		lead.Source = entity.LeadSourceChat
	}

	if image := strings.TrimSpace(input.RenderedImage); image != "" {
		if strings.HasPrefix(image, "data:image/") && len(image) <= maxVisualizerImageBytes {
			lead.VisualizerImage = &image
		} else {
			s.logger.WarnContext(ctx, "dropping invalid or oversized visualizer image",
				slog.Int("bytes", len(image)))
		}
	}

	if input.VisualizerConfig != nil {
		raw, err := json.Marshal(input.VisualizerConfig)
		if err == nil {
			cfgJSON := string(raw)
			lead.VisualizerConfig = &cfgJSON
		}
	}

	// A lost row is recoverable from the notification email, so storage
	// failure does not fail the request.
	if err := s.leads.Create(ctx, lead); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist lead",
			slog.String("name", name),
			slog.Any("error", err))
	}

	if !s.mailer.Enabled() {
		s.logger.InfoContext(ctx, "email sending disabled, skipping quote notifications",
			slog.String("name", name))

		return nil
	}

	if err := s.sendBusinessNotification(ctx, lead, input.VisualizerConfig); err != nil {
		s.logger.ErrorContext(ctx, "failed to send quote notification", slog.Any("error", err))
	}
	if email != "" {
		if err := s.sendCustomerConfirmation(ctx, name, email); err != nil {
			s.logger.WarnContext(ctx, "failed to send quote confirmation", slog.Any("error", err))
		}
	}

	return nil
}

func (s *leadService) sendBusinessNotification(ctx context.Context, lead *entity.Lead, visual *usecase.VisualizerConfig) error {
	var body strings.Builder
	body.WriteString(`<div style="font-family: sans-serif; max-width: 560px;">`)
	body.WriteString("<h2>New quote request</h2><table cellpadding=\"4\">")
	writeRow(&body, "Name", lead.Name)
	writeRow(&body, "Email", deref(lead.Email))
	writeRow(&body, "Phone", deref(lead.Phone))
	writeRow(&body, "Product interest", deref(lead.ProductInterest))
	writeRow(&body, "Product", deref(lead.ProductSlug))
	writeRow(&body, "Series", deref(lead.SeriesSlug))
	writeRow(&body, "Source", string(lead.Source))
	writeRow(&body, "Chat session", deref(lead.ChatSessionID))
	writeRow(&body, "Message", deref(lead.Message))
	body.WriteString("</table>")

	if visual != nil {
		body.WriteString("<h3>Visualizer configuration</h3><table cellpadding=\"4\">")
		writeRow(&body, "Carport", visual.CarportName)
		writeRow(&body, "House style", visual.Style)
		writeRow(&body, "Placement", visual.Placement)
		writeRow(&body, "Metal color", visual.MetalColor)
		writeRow(&body, "Roof panel", visual.RoofPanelType)
		writeRow(&body, "Aluminum panel color", visual.AluminumPanelColor)
		writeRow(&body, "Polycarbonate panel", visual.PolycarbonatePanelType)
		body.WriteString("</table>")
	}

	outbound := &service.OutboundEmail{
		To:      s.businessRecipients(),
		Subject: "New quote request from " + lead.Name,
	}

	if lead.VisualizerImage != nil {
		if content, ok := decodeDataURL(*lead.VisualizerImage); ok {
			outbound.Attachments = append(outbound.Attachments, service.EmailAttachment{
				Filename:  "carport-visual.png",
				Content:   content,
				ContentID: visualCID,
			})
			body.WriteString(fmt.Sprintf(`<h3>Rendered visual</h3><img src="cid:%s" style="max-width: 100%%; border-radius: 8px;" alt="Carport visual">`, visualCID))
		}
	}

	body.WriteString("</div>")
	outbound.HTML = body.String()

	return s.mailer.Send(ctx, outbound)
}

func (s *leadService) sendCustomerConfirmation(ctx context.Context, name, email string) error {
	outbound := &service.OutboundEmail{
		To:      []string{email},
		Subject: "We received your quote request",
		HTML: fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Thanks, %s!</h2>
  <p>We received your quote request and our team will get back to you within one business day.</p>
  <p style="color: #666; font-size: 13px;">KunkelWorks &middot; Authentic Japanese aluminum exterior systems</p>
</div>`, html.EscapeString(name)),
	}

	return s.mailer.Send(ctx, outbound)
}

// businessRecipients merges the primary and additional notification
// addresses, dropping duplicates case-insensitively.
func (s *leadService) businessRecipients() []string {
	seen := make(map[string]struct{})
	var recipients []string

	add := func(addr string) {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		recipients = append(recipients, addr)
	}

	if s.cfg.Resend != nil {
		add(s.cfg.Resend.RecipientEmail)
		for _, addr := range s.cfg.Resend.AdditionalRecipients {
			add(addr)
		}
	}

	return recipients
}

func writeRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, `<tr><td style="color: #666;">%s</td><td>%s</td></tr>`,
		html.EscapeString(label), html.EscapeString(value))
}

// decodeDataURL extracts the raw bytes from a base64 image data URL.
func decodeDataURL(dataURL string) ([]byte, bool) {
	_, encoded, found := strings.Cut(dataURL, ";base64,")
	if !found {
		return nil, false
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}

	return content, true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
