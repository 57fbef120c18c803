package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/service"
	"showroom/internal/infra/catalog"
	mockService "showroom/internal/mocks/service"
	"showroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockService.MockImageGenerator) {
	t.Helper()

	knowledge, err := catalog.New()
	require.NoError(t, err)

	generator := mockService.NewMockImageGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCatalogService(knowledge, generator, logger), generator
}

func TestProducts(t *testing.T) {
	svc, _ := newCatalogService(t)

	groups := svc.Products()

	require.NotEmpty(t, groups)
	assert.Equal(t, "carports", groups[0].ID)
}

func TestVisualizerOptions(t *testing.T) {
	svc, _ := newCatalogService(t)

	options := svc.VisualizerOptions()

	require.NotEmpty(t, options.CarportOptions)
	first := options.CarportOptions[0]
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Name)
	assert.NotEmpty(t, first.ImageURL)
	assert.NotEmpty(t, first.AboutSystem)

	require.NotNil(t, options.Customization)
	assert.Contains(t, options.Customization.HouseStyles, "Minimalist")
	assert.Contains(t, options.Customization.Placements, "left side")
}

func TestRenderVisual(t *testing.T) {
	svc, generator := newCatalogService(t)

	slug := svc.VisualizerOptions().CarportOptions[0].ID

	var req *service.VisualRequest
	generator.EXPECT().Enabled().Return(true)
	generator.EXPECT().Generate(mock.Anything, mock.AnythingOfType("*service.VisualRequest")).
		Run(func(_ context.Context, r *service.VisualRequest) {
			req = r
		}).Return("data:image/png;base64,ZmFrZQ==", nil)

	dataURL, err := svc.RenderVisual(context.Background(), &usecase.RenderVisualInput{
		CarportSlug: slug,
		HouseStyle:  "Minimalist",
		Placement:   "left side",
		MetalColor:  "Urban Gray (UC)",
	})

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,ZmFrZQ==", dataURL)
	require.NotNil(t, req)
	assert.NotEmpty(t, req.CarportName)
	assert.Equal(t, "Minimalist", req.HouseStyle)
}

func TestRenderVisual_UnknownCarport(t *testing.T) {
	svc, generator := newCatalogService(t)

	generator.EXPECT().Enabled().Return(true)

	_, err := svc.RenderVisual(context.Background(), &usecase.RenderVisualInput{
		CarportSlug: "no-such-carport",
		HouseStyle:  "Minimalist",
		Placement:   "front",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRenderVisual_NotConfigured(t *testing.T) {
	svc, generator := newCatalogService(t)

	generator.EXPECT().Enabled().Return(false)

	_, err := svc.RenderVisual(context.Background(), &usecase.RenderVisualInput{
		CarportSlug: "u-style-flat",
		HouseStyle:  "Minimalist",
		Placement:   "front",
	})

	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}
