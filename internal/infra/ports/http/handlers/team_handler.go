package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/infra/ports/http/dto"
	"github.com/aliasparty/backend/internal/usecase"
)

type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
}

func NewTeamHandler(teamUsecase usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

func (h *TeamHandler) ListTeamsHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	teams, err := h.teamUsecase.ListTeams(c.Request().Context(), roomID)
	if err != nil {
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

func (h *TeamHandler) CreateTeamHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	var req dto.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	in, err := input.NewCreateTeamInput(roomID, req.Name)
	if err != nil {
		return jsonError(c, err)
	}

	team, err := h.teamUsecase.CreateTeam(c.Request().Context(), in)
	if err != nil {
		slog.Error("create team", slog.Any(constant.RoomID, roomID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTeamResponseFromModel(team))
}

func (h *TeamHandler) GetTeamHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	team, err := h.teamUsecase.GetTeam(c.Request().Context(), roomID, teamID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTeamResponseFromModel(team))
}

func (h *TeamHandler) DeleteTeamHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.teamUsecase.DeleteTeam(c.Request().Context(), roomID, teamID); err != nil {
		slog.Error("delete team", slog.Any(constant.TeamID, teamID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TeamHandler) AddPlayerHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var req dto.AddPlayerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.PlayerID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "player_id is required"})
	}

	team, err := h.teamUsecase.AddPlayer(c.Request().Context(), roomID, teamID, req.PlayerID)
	if err != nil {
		slog.Error("add player", slog.Any(constant.TeamID, teamID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMembershipResponseFromModel(team))
}

func (h *TeamHandler) RemovePlayerHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	playerID, err := uuid.Parse(c.Param("playerID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid player id"})
	}

	team, err := h.teamUsecase.RemovePlayer(c.Request().Context(), roomID, teamID, playerID)
	if err != nil {
		slog.Error("remove player", slog.Any(constant.TeamID, teamID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMembershipResponseFromModel(team))
}

func (h *TeamHandler) RotateHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	team, err := h.teamUsecase.Rotate(c.Request().Context(), roomID, teamID)
	if err != nil {
		slog.Error("rotate team", slog.Any(constant.TeamID, teamID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTeamResponseFromModel(team))
}

func (h *TeamHandler) RecordResultHandler(c echo.Context) error {
	roomID, teamID, err := parseRoomTeamIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var req dto.RecordResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	in, err := input.NewRecordResultInput(teamID, req.Points)
	if err != nil {
		return jsonError(c, err)
	}

	result, err := h.teamUsecase.RecordResult(c.Request().Context(), roomID, in)
	if err != nil {
		slog.Error("record round result", slog.Any(constant.TeamID, teamID), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewRoundResultResponseFromModel(result))
}

func parseRoomTeamIDs(c echo.Context) (roomID, teamID uuid.UUID, err error) {
	roomID, err = uuid.Parse(c.Param("roomID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid room id")
	}

	teamID, err = uuid.Parse(c.Param("teamID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid team id")
	}

	return roomID, teamID, nil
}
