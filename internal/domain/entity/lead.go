package entity

import "time"

// LeadSource records which surface produced a quote request.
type LeadSource string

const (
	LeadSourceForm LeadSource = "form"
	LeadSourceChat LeadSource = "chat"
)

// Lead is a captured quote request. Either Email or Phone is always present.
type Lead struct {
	ID               int64
	Name             string
	Email            *string
	Phone            *string
	Message          *string
	ProductInterest  *string
	ProductSlug      *string
	SeriesSlug       *string
	ChatSessionID    *string // Session the lead originated from, when submitted via chat.
	Source           LeadSource
	VisualizerImage  *string // Rendered carport visual as a data URL, when supplied.
	VisualizerConfig *string // JSON snapshot of the builder options behind the visual.
	CreatedAt        time.Time
}
