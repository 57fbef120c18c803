package handler

import (
	"log/slog"
	"net/http"

	"showroom/internal/delivery/http/response"
	"showroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the sales-chat endpoint.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// SendMessage handles POST /api/chat.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req usecase.ChatInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	reply, err := h.chatUC.SendMessage(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply, "")
}
