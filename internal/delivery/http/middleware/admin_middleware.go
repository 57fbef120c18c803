package middleware

import (
	"strings"

	"showroom/internal/delivery/http/response"
	"showroom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware guards the dashboard API with the short-lived admin token.
type AdminMiddleware struct {
	tokenSvc service.TokenService
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(tokenSvc service.TokenService) *AdminMiddleware {
	return &AdminMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token issued by the admin login endpoint.
func (m *AdminMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		if err := m.tokenSvc.ValidateAdminToken(token); err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		return next(c)
	}
}
