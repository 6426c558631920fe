package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/infra/appctx"
	"github.com/aliasparty/backend/internal/infra/ports/http/dto"
	"github.com/aliasparty/backend/internal/usecase"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

func (h *MessageHandler) ListMessagesHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	messages, err := h.messageUsecase.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return jsonError(c, err)
	}

	resp := dto.ListMessagesResponse{
		Messages: make([]dto.MessageResponse, 0, len(messages)),
	}

	for _, message := range messages {
		resp.Messages = append(resp.Messages, dto.NewMessageResponseFromModel(message))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) PostMessageHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user"})
	}

	var req dto.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	in, err := input.NewCreateMessageInput(roomID, userID, req.Content)
	if err != nil {
		return jsonError(c, err)
	}

	message, err := h.messageUsecase.Post(c.Request().Context(), in)
	if err != nil {
		slog.Error("post message", slog.Any(constant.RoomID, roomID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewMessageResponseFromModel(message))
}
