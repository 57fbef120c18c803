package service

import "context"

// VisualRequest describes one architectural visualization to render.
type VisualRequest struct {
	HouseStyle             string
	Placement              string
	MetalColor             string
	RoofPanelType          string
	AluminumPanelColor     string
	PolycarbonatePanelType string
	CarportName            string
}

// ImageGenerator renders an architectural visual via a hosted image model.
type ImageGenerator interface {
	// Enabled reports whether an image provider is configured.
	Enabled() bool

	// Generate renders the scene and returns the image as a data URL.
	Generate(ctx context.Context, req *VisualRequest) (string, error)
}
