package input

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/errs"
)

const maxTeamNameLen = 32

type CreateTeamInput struct {
	RoomID uuid.UUID
	Name   string
}

func NewCreateTeamInput(roomID uuid.UUID, name string) (*CreateTeamInput, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", errs.ErrInvalidInput)
	}

	if len(name) > maxTeamNameLen {
		return nil, fmt.Errorf("%w: team name longer than %d characters", errs.ErrInvalidInput, maxTeamNameLen)
	}

	return &CreateTeamInput{RoomID: roomID, Name: name}, nil
}

type RecordResultInput struct {
	TeamID uuid.UUID
	Points int
}

func NewRecordResultInput(teamID uuid.UUID, points int) (*RecordResultInput, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", errs.ErrInvalidInput)
	}

	return &RecordResultInput{TeamID: teamID, Points: points}, nil
}
