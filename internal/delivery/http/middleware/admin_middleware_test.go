package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "showroom/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAdminMiddleware(t *testing.T, authHeader string, setup func(*mockService.MockTokenService)) *httptest.ResponseRecorder {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	if setup != nil {
		setup(tokenSvc)
	}

	m := NewAdminMiddleware(tokenSvc)
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(next)(c))

	return rec
}

func TestAdminMiddleware_ValidToken(t *testing.T) {
	rec := runAdminMiddleware(t, "Bearer valid-token", func(tokenSvc *mockService.MockTokenService) {
		tokenSvc.EXPECT().ValidateAdminToken("valid-token").Return(nil)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAdminMiddleware_MissingHeader(t *testing.T) {
	rec := runAdminMiddleware(t, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddleware_NotBearer(t *testing.T) {
	rec := runAdminMiddleware(t, "Basic dXNlcjpwYXNz", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddleware_InvalidToken(t *testing.T) {
	rec := runAdminMiddleware(t, "Bearer expired-token", func(tokenSvc *mockService.MockTokenService) {
		tokenSvc.EXPECT().ValidateAdminToken("expired-token").Return(errors.New("token is expired"))
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
