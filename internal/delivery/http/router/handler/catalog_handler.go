package handler

import (
	"log/slog"
	"net/http"

	"showroom/internal/delivery/http/response"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the product catalog and the visualizer endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Products handles GET /api/products.
func (h *CatalogHandler) Products(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Products(), "")
}

// VisualizerOptions handles GET /api/visualizer/options.
func (h *CatalogHandler) VisualizerOptions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.VisualizerOptions(), "")
}

// RenderVisual handles POST /api/visualizer/render.
func (h *CatalogHandler) RenderVisual(c echo.Context) error {
	var req usecase.RenderVisualInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid render input")
	}

	image, err := h.catalogUC.RenderVisual(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image": image}, "Visual rendered successfully")
}
