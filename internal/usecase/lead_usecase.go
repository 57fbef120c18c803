package usecase

import "context"

// VisualizerConfig echoes the builder options a visitor chose before
// requesting a quote. Stored verbatim with the lead and summarized in the
// notification email.
type VisualizerConfig struct {
	Style                  string `json:"style,omitempty"`
	Placement              string `json:"placement,omitempty"`
	MetalColor             string `json:"metalColor,omitempty"`
	RoofPanelType          string `json:"roofPanelType,omitempty"`
	AluminumPanelColor     string `json:"aluminumPanelColor,omitempty"`
	PolycarbonatePanelType string `json:"polycarbonatePanelType,omitempty"`
	CarportName            string `json:"carportName,omitempty"`
}

// QuoteInput is one quote request from the site or the sales chat.
type QuoteInput struct {
	Name             string            `json:"name"`
	Email            string            `json:"email,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	Message          string            `json:"message,omitempty"`
	ProductInterest  string            `json:"product_interest,omitempty"`
	ProductSlug      string            `json:"product_slug,omitempty"`
	SeriesSlug       string            `json:"series_slug,omitempty"`
	SessionID        string            `json:"session_id,omitempty"`
	Source           string            `json:"source,omitempty"`
	RenderedImage    string            `json:"rendered_image,omitempty"`
	VisualizerConfig *VisualizerConfig `json:"visualizer_config,omitempty"`
}

// LeadUsecase captures quote requests.
type LeadUsecase interface {
	// SubmitQuote validates and persists the lead, then notifies staff
	// (and confirms to the visitor) by email when mail is configured.
	SubmitQuote(ctx context.Context, input *QuoteInput) error
}
