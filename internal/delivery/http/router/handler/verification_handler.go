package handler

import (
	"log/slog"
	"net/http"

	"showroom/config"
	"showroom/internal/delivery/http/response"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// verifiedEmailCookie is the client-side credential proving email ownership.
const verifiedEmailCookie = "carport_verified_email"

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// VerificationHandler serves the magic-link verification endpoints.
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	cfg            *config.Config
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler.
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: params.VerificationUC,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// RequestMagicLink handles POST /api/chat/request-magic-link.
func (h *VerificationHandler) RequestMagicLink(c echo.Context) error {
	var req usecase.RequestMagicLinkInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid magic link request")
	}
	req.ClientKey = clientKey(c)

	if err := h.verificationUC.RequestMagicLink(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent")
}

// Verify handles GET /api/chat/verify. It consumes the token, sets the
// verified-email cookie on success, and always redirects the browser.
func (h *VerificationHandler) Verify(c echo.Context) error {
	outcome, err := h.verificationUC.VerifyToken(c.Request().Context(), c.QueryParam("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if outcome.Verified() {
		c.SetCookie(&http.Cookie{
			Name:     verifiedEmailCookie,
			Value:    outcome.Credential,
			Path:     "/",
			MaxAge:   int(h.cfg.MagicLink.CookieTTL.Seconds()),
			HttpOnly: true,
			Secure:   h.cfg.IsProduction(),
			SameSite: http.SameSiteLaxMode,
		})
	}

	return c.Redirect(http.StatusFound, outcome.RedirectURL)
}

// VerifiedEmail handles GET /api/chat/verified-email.
func (h *VerificationHandler) VerifiedEmail(c echo.Context) error {
	var data struct {
		Email *string `json:"email"`
	}

	if cookie, err := c.Cookie(verifiedEmailCookie); err == nil {
		if email, ok := h.verificationUC.VerifiedEmail(cookie.Value); ok {
			data.Email = &email
		}
	}

	return response.Success(c, http.StatusOK, data, "")
}

// LinkSession handles POST /api/chat/link.
func (h *VerificationHandler) LinkSession(c echo.Context) error {
	var req usecase.LinkSessionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link session request")
	}

	if cookie, err := c.Cookie(verifiedEmailCookie); err == nil {
		req.Credential = cookie.Value
	}

	if err := h.verificationUC.LinkSession(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Session linked successfully")
}

// ListSessions handles GET /api/chat/sessions.
func (h *VerificationHandler) ListSessions(c echo.Context) error {
	sessions, err := h.verificationUC.ListSessions(c.Request().Context(), c.QueryParam("email"), clientKey(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"sessions": sessions}, "Sessions retrieved successfully")
}
