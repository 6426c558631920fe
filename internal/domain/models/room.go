package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	TurnDuration int       `db:"turn_duration"`
	TeamIDs      UUIDList  `db:"team_ids"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func NewRoom(name string, turnDuration int) *Room {
	now := time.Now()

	return &Room{
		ID:           uuid.New(),
		Name:         name,
		TurnDuration: turnDuration,
		TeamIDs:      UUIDList{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
