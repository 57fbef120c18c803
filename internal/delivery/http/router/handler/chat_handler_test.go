package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUsecase "showroom/internal/mocks/usecase"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_SendMessage(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	handler := &ChatHandler{
		chatUC: uc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	uc.EXPECT().SendMessage(mock.Anything, mock.AnythingOfType("*usecase.ChatInput")).
		Return(&usecase.ChatReply{SessionID: "sess-1", Message: "We carry four carport systems."}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message":"What carports do you have?","session_id":"sess-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_id":"sess-1"`)
	assert.Contains(t, rec.Body.String(), "We carry four carport systems.")
}

func TestChatHandler_SendMessage_BadBody(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	handler := &ChatHandler{
		chatUC: uc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
