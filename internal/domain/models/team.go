package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/errs"
)

// MaxTeamSize is the squad capacity. The game is balanced around
// three-player teams and the capacity is not configurable.
const MaxTeamSize = 3

type Team struct {
	ID          uuid.UUID     `db:"id"`
	RoomID      uuid.UUID     `db:"room_id"`
	Name        string        `db:"name"`
	PlayerIDs   UUIDList      `db:"player_ids"`
	DescriberID uuid.NullUUID `db:"describer_id"`
	LeaderID    uuid.NullUUID `db:"leader_id"`
	Score       int           `db:"score"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func NewTeam(roomID uuid.UUID, name string) *Team {
	now := time.Now()

	return &Team{
		ID:        uuid.New(),
		RoomID:    roomID,
		Name:      name,
		PlayerIDs: UUIDList{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddPlayer appends playerID to the roster. Capacity and duplicates are
// checked here; cross-team membership is deliberately not.
func (t *Team) AddPlayer(playerID uuid.UUID) error {
	if len(t.PlayerIDs) >= MaxTeamSize {
		return errs.ErrTeamFull
	}

	if t.PlayerIDs.Contains(playerID) {
		return errs.ErrDuplicateMember
	}

	t.PlayerIDs = append(t.PlayerIDs, playerID)

	return nil
}

// RemovePlayer drops playerID from the roster, preserving the order of
// the remaining players. Removing a non-member is a no-op; the returned
// bool reports whether the roster changed. Role fields are not touched,
// the next rotation resolves a departed describer as unset.
func (t *Team) RemovePlayer(playerID uuid.UUID) bool {
	idx := t.PlayerIDs.IndexOf(playerID)
	if idx < 0 {
		return false
	}

	t.PlayerIDs = append(t.PlayerIDs[:idx], t.PlayerIDs[idx+1:]...)

	return true
}

// NextRotation computes the describer and leader for the next round.
// The describer advances one position past the current one (unset or
// departed describer restarts from the head), the leader is always the
// player after the describer. With a single player both roles collapse
// onto that player.
func (t *Team) NextRotation() (describer, leader uuid.UUID, err error) {
	n := len(t.PlayerIDs)
	if n == 0 {
		return uuid.Nil, uuid.Nil, errs.ErrTeamEmpty
	}

	cur := -1
	if t.DescriberID.Valid {
		cur = t.PlayerIDs.IndexOf(t.DescriberID.UUID)
	}

	describerIdx := (cur + 1) % n
	leaderIdx := (describerIdx + 1) % n

	return t.PlayerIDs[describerIdx], t.PlayerIDs[leaderIdx], nil
}
