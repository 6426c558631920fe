package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/models"
)

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type TeamResponse struct {
	ID          uuid.UUID   `json:"id"`
	RoomID      uuid.UUID   `json:"room_id"`
	Name        string      `json:"name"`
	PlayerIDs   []uuid.UUID `json:"player_ids"`
	DescriberID *uuid.UUID  `json:"describer_id"`
	LeaderID    *uuid.UUID  `json:"leader_id"`
	Score       int         `json:"score"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func NewTeamResponseFromModel(t *models.Team) TeamResponse {
	resp := TeamResponse{
		ID:        t.ID,
		RoomID:    t.RoomID,
		Name:      t.Name,
		PlayerIDs: t.PlayerIDs,
		Score:     t.Score,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	if t.DescriberID.Valid {
		id := t.DescriberID.UUID
		resp.DescriberID = &id
	}

	if t.LeaderID.Valid {
		id := t.LeaderID.UUID
		resp.LeaderID = &id
	}

	return resp
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type AddPlayerRequest struct {
	PlayerID uuid.UUID `json:"player_id"`
}

// MembershipResponse confirms an add/remove, referencing the scope it
// happened in.
type MembershipResponse struct {
	RoomID uuid.UUID    `json:"room_id"`
	TeamID uuid.UUID    `json:"team_id"`
	Team   TeamResponse `json:"team"`
}

func NewMembershipResponseFromModel(t *models.Team) MembershipResponse {
	return MembershipResponse{
		RoomID: t.RoomID,
		TeamID: t.ID,
		Team:   NewTeamResponseFromModel(t),
	}
}

type RecordResultRequest struct {
	Points int `json:"points"`
}

type RoundResultResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRoundResultResponseFromModel(r *models.RoundResult) RoundResultResponse {
	return RoundResultResponse{
		ID:        r.ID,
		TeamID:    r.TeamID,
		Points:    r.Points,
		CreatedAt: r.CreatedAt,
	}
}
