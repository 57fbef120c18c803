package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showroom/internal/delivery/http/validator"
	domainerrors "showroom/internal/domain/errors"
	mockUsecase "showroom/internal/mocks/usecase"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := &AdminHandler{
		adminUC: uc,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return handler, uc, e
}

func TestAdminHandler_Login(t *testing.T) {
	handler, uc, e := newAdminHandler(t)

	uc.EXPECT().Login("hunter2").Return("jwt-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"secret":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
}

func TestAdminHandler_Login_WrongSecret(t *testing.T) {
	handler, uc, e := newAdminHandler(t)

	uc.EXPECT().Login("wrong").Return("", domainerrors.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"secret":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_GetLead_InvalidID(t *testing.T) {
	handler, _, e := newAdminHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetLead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_GetTranscript(t *testing.T) {
	handler, uc, e := newAdminHandler(t)

	uc.EXPECT().GetTranscript(mock.Anything, "sess-1").Return(&usecase.Transcript{
		SessionID: "sess-1",
		Messages: []*usecase.TranscriptMessage{
			{Role: "user", Content: "Hi"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/chat/sess-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues("sess-1")

	require.NoError(t, handler.GetTranscript(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_id":"sess-1"`)
}
