package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/config"
	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/application/metric"
	"github.com/aliasparty/backend/internal/domain/events"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/infra/adapters/memory"
	"github.com/aliasparty/backend/internal/infra/appctx"
	"github.com/aliasparty/backend/internal/usecase"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

type WebSocketHandler struct {
	upgrader *websocket.Upgrader

	roomUsecase    usecase.RoomUsecase
	messageUsecase usecase.MessageUsecase
	subsRepo       memory.RoomSubscribersRepository
}

func NewWebSocketHandler(
	cfg *config.Config,
	roomUsecase usecase.RoomUsecase,
	messageUsecase usecase.MessageUsecase,
	subsRepo memory.RoomSubscribersRepository,
) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.Debug {
					return true
				}

				return r.Header.Get("Origin") == cfg.Domain
			},
		},
		roomUsecase:    roomUsecase,
		messageUsecase: messageUsecase,
		subsRepo:       subsRepo,
	}
}

func (h *WebSocketHandler) Handle(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user"})
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("websocket upgrade", slog.Any(constant.Error, err))
		return err
	}
	defer ws.Close()

	metric.IncrementWSActiveConnections()
	defer metric.DecrementWSActiveConnections()

	if err := ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
					return
				}
			case <-c.Request().Context().Done():
				return
			}
		}
	}()

	sess := &wsSession{userID: userID}
	defer h.leave(sess)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Error("websocket read", slog.Any(constant.Error, err))
			}

			return nil
		}

		frame := new(events.Message)

		if err = json.Unmarshal(msg, frame); err != nil {
			slog.Error("unmarshal websocket message", slog.Any(constant.Error, err))

			return nil
		}

		if err = h.handleMessage(c.Request().Context(), ws, sess, frame); err != nil {
			slog.Error("handle websocket message", slog.Any(constant.Error, err))
		}
	}
}

// wsSession is the per-connection state: which room, if any, this
// connection is subscribed to.
type wsSession struct {
	userID uuid.UUID
	roomID uuid.UUID
	joined bool
}

func (h *WebSocketHandler) handleMessage(
	ctx context.Context,
	ws *websocket.Conn,
	sess *wsSession,
	frame *events.Message,
) error {
	switch frame.Type {
	case "join":
		var join events.JoinEvent

		if err := json.Unmarshal(frame.Data, &join); err != nil {
			return fmt.Errorf("unmarshal join event: %w", err)
		}

		return h.handleJoin(ctx, ws, sess, join.RoomID)

	case "chat":
		if !sess.joined {
			return errors.New("chat before join")
		}

		var chat events.ChatEvent

		if err := json.Unmarshal(frame.Data, &chat); err != nil {
			return fmt.Errorf("unmarshal chat event: %w", err)
		}

		in, err := input.NewCreateMessageInput(sess.roomID, sess.userID, chat.Content)
		if err != nil {
			return err
		}

		// Post persists and broadcasts to the room, this connection
		// included.
		if _, err := h.messageUsecase.Post(ctx, in); err != nil {
			return fmt.Errorf("post message: %w", err)
		}

		return nil

	case "leave":
		h.leave(sess)
		return nil

	default:
		return fmt.Errorf("unknown message type %q", frame.Type)
	}
}

func (h *WebSocketHandler) handleJoin(ctx context.Context, ws *websocket.Conn, sess *wsSession, roomID uuid.UUID) error {
	if _, err := h.roomUsecase.GetRoom(ctx, roomID); err != nil {
		return fmt.Errorf("join room: %w", err)
	}

	// Re-joining moves the subscription to the new room.
	h.leave(sess)

	h.subsRepo.Add(roomID, sess.userID, ws)
	sess.roomID = roomID
	sess.joined = true

	h.subsRepo.BroadcastExcept(roomID, sess.userID, events.Outbound{
		Type: events.TypeUserJoined,
		Data: events.UserEvent{UserID: sess.userID, RoomID: roomID},
	})

	return nil
}

func (h *WebSocketHandler) leave(sess *wsSession) {
	if !sess.joined {
		return
	}

	h.subsRepo.Remove(sess.roomID, sess.userID)

	h.subsRepo.Broadcast(sess.roomID, events.Outbound{
		Type: events.TypeUserLeft,
		Data: events.UserEvent{UserID: sess.userID, RoomID: sess.roomID},
	})

	sess.joined = false
	sess.roomID = uuid.Nil
}
