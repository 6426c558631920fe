package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/infra/ports/http/dto"
	"github.com/aliasparty/backend/internal/usecase"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

func (h *RoomHandler) ListRoomsHandler(c echo.Context) error {
	rooms, err := h.roomUsecase.ListRooms(c.Request().Context())
	if err != nil {
		slog.Error("list rooms", slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	resp := dto.ListRoomsResponse{
		Rooms: make([]dto.RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, dto.NewRoomResponseFromModel(room))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) CreateRoomHandler(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	in, err := input.NewCreateRoomInput(req.Name, req.TurnDuration)
	if err != nil {
		return jsonError(c, err)
	}

	room, err := h.roomUsecase.CreateRoom(c.Request().Context(), in)
	if err != nil {
		slog.Error("create room", slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewRoomResponseFromModel(room))
}

func (h *RoomHandler) GetRoomHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	room, err := h.roomUsecase.GetRoom(c.Request().Context(), roomID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRoomResponseFromModel(room))
}

func (h *RoomHandler) DeleteRoomHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	if err := h.roomUsecase.DeleteRoom(c.Request().Context(), roomID); err != nil {
		slog.Error("delete room", slog.Any(constant.RoomID, roomID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) CalculateScoresHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	teams, err := h.roomUsecase.RecalculateScores(c.Request().Context(), roomID)
	if err != nil {
		slog.Error("recalculate scores", slog.Any(constant.RoomID, roomID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	resp := dto.ListTeamsResponse{
		Teams: make([]dto.TeamResponse, 0, len(teams)),
	}

	for _, team := range teams {
		resp.Teams = append(resp.Teams, dto.NewTeamResponseFromModel(team))
	}

	return c.JSON(http.StatusOK, resp)
}
