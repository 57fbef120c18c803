package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"showroom/internal/delivery/http/response"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the dashboard API.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// LoginRequest represents the request body for the admin login.
type LoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.adminUC.Login(req.Secret)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Login successful")
}

// ListLeads handles GET /api/admin/leads.
func (h *AdminHandler) ListLeads(c echo.Context) error {
	leads, err := h.adminUC.ListLeads(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"leads": leads}, "Leads retrieved successfully")
}

// GetLead handles GET /api/admin/leads/:id.
func (h *AdminHandler) GetLead(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	lead, err := h.adminUC.GetLead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead retrieved successfully")
}

// ListChatSessions handles GET /api/admin/chat-sessions.
func (h *AdminHandler) ListChatSessions(c echo.Context) error {
	sessions, err := h.adminUC.ListChatSessions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"sessions": sessions}, "Chat sessions retrieved successfully")
}

// GetTranscript handles GET /api/admin/chat/:sessionId.
func (h *AdminHandler) GetTranscript(c echo.Context) error {
	transcript, err := h.adminUC.GetTranscript(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transcript, "Transcript retrieved successfully")
}
