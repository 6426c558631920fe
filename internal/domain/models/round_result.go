package models

import (
	"time"

	"github.com/google/uuid"
)

// RoundResult records the points a team earned in one round. Team
// scores are not kept incrementally; the aggregator recomputes them
// from these rows on demand.
type RoundResult struct {
	ID        uuid.UUID `db:"id"`
	TeamID    uuid.UUID `db:"team_id"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
}

func NewRoundResult(teamID uuid.UUID, points int) *RoundResult {
	return &RoundResult{
		ID:        uuid.New(),
		TeamID:    teamID,
		Points:    points,
		CreatedAt: time.Now(),
	}
}
