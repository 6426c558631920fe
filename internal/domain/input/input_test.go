package input_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/domain/input"
)

func TestNewCreateRoomInput(t *testing.T) {
	tests := []struct {
		name         string
		roomName     string
		turnDuration int
		wantErr      bool
	}{
		{name: "valid", roomName: "Quick round", turnDuration: 60},
		{name: "trims whitespace", roomName: "  Quick round  ", turnDuration: 60},
		{name: "empty name", roomName: "   ", turnDuration: 60, wantErr: true},
		{name: "duration too short", roomName: "Quick round", turnDuration: 5, wantErr: true},
		{name: "duration too long", roomName: "Quick round", turnDuration: 601, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := input.NewCreateRoomInput(tt.roomName, tt.turnDuration)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Quick round", in.Name)
			assert.Equal(t, tt.turnDuration, in.TurnDuration)
		})
	}
}

func TestNewCreateTeamInput(t *testing.T) {
	roomID := uuid.New()

	in, err := input.NewCreateTeamInput(roomID, " Red ")
	require.NoError(t, err)
	assert.Equal(t, "Red", in.Name)
	assert.Equal(t, roomID, in.RoomID)

	_, err = input.NewCreateTeamInput(roomID, "")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestNewCreateMessageInput(t *testing.T) {
	_, err := input.NewCreateMessageInput(uuid.New(), uuid.New(), "   ")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	in, err := input.NewCreateMessageInput(uuid.New(), uuid.New(), " hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", in.Content)
}

func TestNewRecordResultInput(t *testing.T) {
	_, err := input.NewRecordResultInput(uuid.New(), -1)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	in, err := input.NewRecordResultInput(uuid.New(), 0)
	require.NoError(t, err)
	assert.Zero(t, in.Points)
}
