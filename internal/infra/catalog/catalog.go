// Package catalog serves the product knowledge base embedded in the binary.
// The JSON files under data/ are the single source of truth for the public
// catalog API, the visualizer options, and the sales-chat system prompt.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"showroom/internal/domain/entity"

	"github.com/pkg/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// groupOrder fixes the catalog presentation order.
var groupOrder = []string{"carports", "patio-covers", "gates", "fences", "entry-doors"}

// Catalog exposes the embedded product knowledge base.
type Catalog struct {
	groups  []*entity.ProductGroup
	byID    map[string]*entity.ProductGroup
	summary string
}

// New parses the embedded product data. It fails only on malformed embedded
// JSON, which is a build defect rather than a runtime condition.
func New() (*Catalog, error) {
	catalog := &Catalog{
		byID: make(map[string]*entity.ProductGroup, len(groupOrder)),
	}

	for _, id := range groupOrder {
		raw, err := dataFS.ReadFile("data/" + id + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "read product group %s", id)
		}

		group := &entity.ProductGroup{}
		if err := json.Unmarshal(raw, group); err != nil {
			return nil, errors.Wrapf(err, "parse product group %s", id)
		}
		group.ID = id

		catalog.groups = append(catalog.groups, group)
		catalog.byID[id] = group
	}

	catalog.summary = buildSummary(catalog.groups)

	return catalog, nil
}

// Groups returns every product group in presentation order.
func (c *Catalog) Groups() []*entity.ProductGroup {
	return c.groups
}

// Group returns one product group by ID.
func (c *Catalog) Group(id string) (*entity.ProductGroup, bool) {
	group, ok := c.byID[id]

	return group, ok
}

// Summary returns the product knowledge text injected into the sales-chat
// system prompt.
func (c *Catalog) Summary() string {
	return c.summary
}

// VisualizerCarports returns the carport series selectable in the
// architectural visualizer, built from the carports group's series details.
func (c *Catalog) VisualizerCarports() []*entity.VisualizerCarport {
	carports, ok := c.byID["carports"]
	if !ok || len(carports.SeriesDetails) == 0 {
		return nil
	}

	slugs := make([]string, 0, len(carports.SeriesDetails))
	for slug := range carports.SeriesDetails {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	options := make([]*entity.VisualizerCarport, 0, len(slugs))
	for _, slug := range slugs {
		detail := carports.SeriesDetails[slug]
		options = append(options, &entity.VisualizerCarport{
			Slug:           slug,
			Name:           detail.Name,
			ReferenceImage: detail.Image,
		})
	}

	return options
}

// Customization returns the builder options the visualizer exposes.
func (c *Catalog) Customization() *entity.VisualizerCustomization {
	return &entity.VisualizerCustomization{
		HouseStyles: []string{
			"Minimalist",
			"Brutalist",
			"Scandinavian",
			"Mid-Century Modern",
			"Contemporary Luxury",
		},
		Placements: []string{"left side", "right side", "front"},
		MetalColors: []string{
			"Sun Silver (SLC)",
			"Urban Gray (UC)",
			"Dark Bronze (BD)",
			"Black (KC)",
			"White (WH)",
			"Bronze (BR)",
			"Earth Brown (BNC)",
		},
		RoofPanelTypes: []string{"Aluminum", "Polycarbonate (Lexan)"},
		AluminumPanelColors: []string{
			"Urban Gray Aluminum",
			"Deep Brown Aluminum",
		},
		PolycarbonatePanelTypes: []string{
			"Brown Panel",
			"Blue Panel",
			"Frosted Panel",
			"AO Heat-cut",
			"Frosted Heat-cut",
			"Infra-red HC Frosted",
		},
	}
}

// buildSummary renders the catalog as markdown-ish text for the model.
func buildSummary(groups []*entity.ProductGroup) string {
	var parts []string
	for _, group := range groups {
		parts = append(parts, formatGroup(group))
	}

	intro := "KunkelWorks is the distributor of authentic Japanese aluminum exterior systems (Sankyo-Tateyama, Takaoka, Japan). Product lines:\n\n"

	return intro + strings.Join(parts, "\n\n")
}

func formatGroup(group *entity.ProductGroup) string {
	parts := []string{fmt.Sprintf("## %s\n%s", group.Name, group.Description)}
	if group.DescriptionLong != "" {
		parts = append(parts, group.DescriptionLong)
	}
	if len(group.Series) > 0 {
		parts = append(parts, "Series: "+strings.Join(group.Series, ", "))
	}
	if len(group.Styles) > 0 {
		parts = append(parts, "Styles: "+strings.Join(group.Styles, ", "))
	}
	if len(group.Options) > 0 {
		parts = append(parts, "Options: "+strings.Join(group.Options, ", "))
	}
	if len(group.Sizes) > 0 {
		parts = append(parts, "Sizes/dimensions: "+strings.Join(group.Sizes, "; "))
	}
	if len(group.Finishes) > 0 {
		parts = append(parts, "Finishes: "+strings.Join(group.Finishes, "; "))
	}
	if len(group.Benefits) > 0 {
		parts = append(parts, "Benefits: "+strings.Join(group.Benefits, ", "))
	}
	if group.PriceNote != "" {
		parts = append(parts, "Pricing: "+group.PriceNote)
	}

	if len(group.SeriesDetails) > 0 {
		parts = append(parts, "Series details (use for specific series questions):")

		slugs := make([]string, 0, len(group.SeriesDetails))
		for slug := range group.SeriesDetails {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)

		for _, slug := range slugs {
			parts = append(parts, formatSeriesDetail(group.SeriesDetails[slug]))
		}
	}

	return strings.Join(parts, "\n")
}

func formatSeriesDetail(detail entity.SeriesDetail) string {
	parts := []string{"### " + detail.Name}
	if detail.Description != "" {
		parts = append(parts, detail.Description)
	}
	if detail.Colors != "" {
		parts = append(parts, "Colors: "+detail.Colors)
	}
	if len(detail.Sizes) > 0 {
		parts = append(parts, "Sizes: "+strings.Join(detail.Sizes, "; "))
	}
	if detail.PriceRange != "" {
		parts = append(parts, "Price range: "+detail.PriceRange)
	}
	if detail.DetailURL != "" {
		parts = append(parts, "Details: "+detail.DetailURL)
	}

	return strings.Join(parts, "\n")
}
