package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/models"
)

type CreateRoomRequest struct {
	Name         string `json:"name"`
	TurnDuration int    `json:"turn_duration"`
}

type RoomResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	TurnDuration int         `json:"turn_duration"`
	TeamIDs      []uuid.UUID `json:"team_ids"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func NewRoomResponseFromModel(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		TurnDuration: r.TurnDuration,
		TeamIDs:      r.TeamIDs,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}
