package handler

import (
	"log/slog"
	"net/http"

	"showroom/internal/delivery/http/response"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// QuoteHandler serves the quote-request endpoint.
type QuoteHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler.
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// SubmitQuote handles POST /api/quote.
func (h *QuoteHandler) SubmitQuote(c echo.Context) error {
	var req usecase.QuoteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := h.leadUC.SubmitQuote(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quote request received")
}
