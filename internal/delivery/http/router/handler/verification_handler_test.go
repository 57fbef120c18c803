package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"showroom/config"
	mockUsecase "showroom/internal/mocks/usecase"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationHandler(t *testing.T) (*VerificationHandler, *mockUsecase.MockVerificationUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.MagicLink = config.MagicLinkConfig{
		BaseURL:   "https://example.com",
		CookieTTL: 24 * time.Hour,
	}

	uc := mockUsecase.NewMockVerificationUsecase(t)
	handler := &VerificationHandler{
		verificationUC: uc,
		cfg:            cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, uc
}

func TestVerificationHandler_RequestMagicLink(t *testing.T) {
	handler, uc := newVerificationHandler(t)

	var input *usecase.RequestMagicLinkInput
	uc.EXPECT().RequestMagicLink(mock.Anything, mock.AnythingOfType("*usecase.RequestMagicLinkInput")).
		Run(func(_ context.Context, in *usecase.RequestMagicLinkInput) {
			input = in
		}).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/request-magic-link",
		strings.NewReader(`{"email":"visitor@example.com","intent":"list_sessions"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("CF-Connecting-IP", "203.0.113.9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RequestMagicLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	require.NotNil(t, input)
	assert.Equal(t, "203.0.113.9", input.ClientKey)
}

func TestVerificationHandler_VerifySetsCookieAndRedirects(t *testing.T) {
	handler, uc := newVerificationHandler(t)

	uc.EXPECT().VerifyToken(mock.Anything, "tok-1").Return(&usecase.VerifyOutcome{
		RedirectURL: "https://example.com/chat?linked=1",
		Credential:  "signed-credential",
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/verify?token=tok-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Verify(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/chat?linked=1", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, verifiedEmailCookie, cookies[0].Name)
	assert.Equal(t, "signed-credential", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 86400, cookies[0].MaxAge)
}

func TestVerificationHandler_VerifyFailureRedirectsWithoutCookie(t *testing.T) {
	handler, uc := newVerificationHandler(t)

	uc.EXPECT().VerifyToken(mock.Anything, "bogus").Return(&usecase.VerifyOutcome{
		RedirectURL: "https://example.com/chat?error=expired",
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/verify?token=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Verify(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/chat?error=expired", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Result().Cookies())
}

func TestVerificationHandler_VerifiedEmail(t *testing.T) {
	handler, uc := newVerificationHandler(t)

	uc.EXPECT().VerifiedEmail("signed-credential").Return("visitor@example.com", true)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/verified-email", nil)
	req.AddCookie(&http.Cookie{Name: verifiedEmailCookie, Value: "signed-credential"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifiedEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"visitor@example.com"`)
}

func TestVerificationHandler_VerifiedEmail_NoCookie(t *testing.T) {
	handler, _ := newVerificationHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/verified-email", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifiedEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":null`)
}

func TestVerificationHandler_LinkSessionForwardsCookie(t *testing.T) {
	handler, uc := newVerificationHandler(t)

	var input *usecase.LinkSessionInput
	uc.EXPECT().LinkSession(mock.Anything, mock.AnythingOfType("*usecase.LinkSessionInput")).
		Run(func(_ context.Context, in *usecase.LinkSessionInput) {
			input = in
		}).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/link",
		strings.NewReader(`{"session_id":"sess-1","email":"visitor@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: verifiedEmailCookie, Value: "signed-credential"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.LinkSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, input)
	assert.Equal(t, "sess-1", input.SessionID)
	assert.Equal(t, "signed-credential", input.Credential)
}

func TestClientKey(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "cloudflare header wins",
			headers: map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.7"},
			want:    "203.0.113.9",
		},
		{
			name:    "first forwarded address",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"},
			want:    "198.51.100.7",
		},
		{
			name:    "no attribution shares the unknown bucket",
			headers: nil,
			want:    "unknown",
		},
		{
			name:    "blank forwarded header is ignored",
			headers: map[string]string{"X-Forwarded-For": " , 10.0.0.1"},
			want:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, clientKey(c))
		})
	}
}
