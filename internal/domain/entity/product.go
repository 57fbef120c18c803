package entity

// SeriesDetail describes one product series inside a group, used for
// series-specific answers in the sales chat and on detail pages.
type SeriesDetail struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      string   `json:"colors,omitempty"`
	PriceRange  string   `json:"priceRange,omitempty"`
	PDFURL      string   `json:"pdfUrl,omitempty"`
	DetailURL   string   `json:"detailUrl,omitempty"`
	GalleryURL  string   `json:"galleryUrl,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// ProductGroup is one catalog category (carports, gates, fences, ...).
type ProductGroup struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	DescriptionLong string                  `json:"descriptionLong,omitempty"`
	Series          []string                `json:"series,omitempty"`
	Styles          []string                `json:"styles,omitempty"`
	Options         []string                `json:"options,omitempty"`
	Benefits        []string                `json:"benefits,omitempty"`
	Sizes           []string                `json:"sizes,omitempty"`
	Finishes        []string                `json:"finishes,omitempty"`
	PriceNote       string                  `json:"priceNote,omitempty"`
	Attribution     string                  `json:"attribution,omitempty"`
	SeriesDetails   map[string]SeriesDetail `json:"seriesDetails,omitempty"`
}

// VisualizerCarport is one selectable carport in the architectural visualizer.
type VisualizerCarport struct {
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	ReferenceImage string `json:"referenceImage"`
}

// VisualizerCustomization lists the builder options the visualizer exposes.
type VisualizerCustomization struct {
	HouseStyles             []string `json:"houseStyles"`
	Placements              []string `json:"placements"`
	MetalColors             []string `json:"metalColors"`
	RoofPanelTypes          []string `json:"roofPanelTypes"`
	AluminumPanelColors     []string `json:"aluminumPanelColors"`
	PolycarbonatePanelTypes []string `json:"polycarbonatePanelTypes"`
}
