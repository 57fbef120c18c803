package usecase

import (
	"context"

	"showroom/internal/domain/entity"
)

// CarportOption is one selectable carport in the visualizer.
type CarportOption struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ImageURL       string `json:"imageUrl"`
	AboutSystem    string `json:"aboutSystem,omitempty"`
	Specifications string `json:"specifications,omitempty"`
}

// VisualizerOptions bundles everything the visualizer UI needs to render its
// builder controls.
type VisualizerOptions struct {
	CarportOptions []*CarportOption                `json:"carportOptions"`
	Customization  *entity.VisualizerCustomization `json:"customization"`
}

// RenderVisualInput selects the scene for one architectural rendering.
type RenderVisualInput struct {
	CarportSlug            string `json:"carport_slug"`
	HouseStyle             string `json:"house_style"`
	Placement              string `json:"placement"`
	MetalColor             string `json:"metal_color,omitempty"`
	RoofPanelType          string `json:"roof_panel_type,omitempty"`
	AluminumPanelColor     string `json:"aluminum_panel_color,omitempty"`
	PolycarbonatePanelType string `json:"polycarbonate_panel_type,omitempty"`
}

// CatalogUsecase serves the product knowledge base and the visualizer.
type CatalogUsecase interface {
	// Products returns the full catalog in presentation order.
	Products() []*entity.ProductGroup

	// VisualizerOptions returns carport and customization options.
	VisualizerOptions() *VisualizerOptions

	// RenderVisual proxies one rendering request to the image model and
	// returns the result as a data URL.
	RenderVisual(ctx context.Context, input *RenderVisualInput) (string, error)
}
