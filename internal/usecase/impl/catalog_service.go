package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/service"
	"showroom/internal/infra/catalog"
	"showroom/internal/usecase"
)

type catalogService struct {
	catalog   *catalog.Catalog
	generator service.ImageGenerator
	logger    *slog.Logger
}

// NewCatalogService creates the catalog and visualizer usecase.
func NewCatalogService(
	catalog *catalog.Catalog,
	generator service.ImageGenerator,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog:   catalog,
		generator: generator,
		logger:    logger,
	}
}

func (s *catalogService) Products() []*entity.ProductGroup {
	return s.catalog.Groups()
}

func (s *catalogService) VisualizerOptions() *usecase.VisualizerOptions {
	carports := s.catalog.VisualizerCarports()
	options := make([]*usecase.CarportOption, 0, len(carports))

	group, _ := s.catalog.Group("carports")
	for _, carport := range carports {
		option := &usecase.CarportOption{
			ID:       carport.Slug,
			Name:     carport.Name,
			ImageURL: carport.ReferenceImage,
		}
		if group != nil {
			if detail, ok := group.SeriesDetails[carport.Slug]; ok {
				option.AboutSystem = detail.Description
				option.Specifications = formatSpecifications(detail)
			}
		}
		options = append(options, option)
	}

	return &usecase.VisualizerOptions{
		CarportOptions: options,
		Customization:  s.catalog.Customization(),
	}
}

func (s *catalogService) RenderVisual(ctx context.Context, input *usecase.RenderVisualInput) (string, error) {
	if !s.generator.Enabled() {
		return "", domainerrors.ErrServiceUnavailable.WrapMessage("image generation is not configured")
	}

	carportName, ok := s.carportName(input.CarportSlug)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown carport selection")
	}
	if strings.TrimSpace(input.HouseStyle) == "" || strings.TrimSpace(input.Placement) == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("house style and placement are required")
	}

	dataURL, err := s.generator.Generate(ctx, &service.VisualRequest{
		HouseStyle:             input.HouseStyle,
		Placement:              input.Placement,
		MetalColor:             input.MetalColor,
		RoofPanelType:          input.RoofPanelType,
		AluminumPanelColor:     input.AluminumPanelColor,
		PolycarbonatePanelType: input.PolycarbonatePanelType,
		CarportName:            carportName,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "visual rendering failed",
			slog.String("carport", input.CarportSlug),
			slog.Any("error", err))

		return "", domainerrors.ErrServiceUnavailable.WrapMessage("image generation failed")
	}

	return dataURL, nil
}

func (s *catalogService) carportName(slug string) (string, bool) {
	for _, carport := range s.catalog.VisualizerCarports() {
		if carport.Slug == slug {
			return carport.Name, true
		}
	}

	return "", false
}

func formatSpecifications(detail entity.SeriesDetail) string {
	var parts []string
	if len(detail.Sizes) > 0 {
		parts = append(parts, "Sizes: "+strings.Join(detail.Sizes, "; "))
	}
	if detail.Colors != "" {
		parts = append(parts, "Colors: "+detail.Colors)
	}
	if detail.PriceRange != "" {
		parts = append(parts, fmt.Sprintf("Price range: %s", detail.PriceRange))
	}

	return strings.Join(parts, "\n")
}
