package input

import (
	"fmt"
	"strings"

	"github.com/aliasparty/backend/internal/domain/errs"
)

const (
	maxRoomNameLen = 64

	minTurnDuration = 10
	maxTurnDuration = 600
)

type CreateRoomInput struct {
	Name         string
	TurnDuration int
}

// NewCreateRoomInput validates the raw payload values and returns a
// normalized input or ErrInvalidInput.
func NewCreateRoomInput(name string, turnDuration int) (*CreateRoomInput, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", errs.ErrInvalidInput)
	}

	if len(name) > maxRoomNameLen {
		return nil, fmt.Errorf("%w: room name longer than %d characters", errs.ErrInvalidInput, maxRoomNameLen)
	}

	if turnDuration < minTurnDuration || turnDuration > maxTurnDuration {
		return nil, fmt.Errorf(
			"%w: turn duration must be between %d and %d seconds",
			errs.ErrInvalidInput, minTurnDuration, maxTurnDuration,
		)
	}

	return &CreateRoomInput{Name: name, TurnDuration: turnDuration}, nil
}
