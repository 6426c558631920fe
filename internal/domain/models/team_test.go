package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/domain/models"
)

func newTeamWithPlayers(n int) (*models.Team, []uuid.UUID) {
	team := models.NewTeam(uuid.New(), "Red")

	players := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		players = append(players, id)
		if err := team.AddPlayer(id); err != nil {
			panic(err)
		}
	}

	return team, players
}

func TestTeam_AddPlayer(t *testing.T) {
	team, players := newTeamWithPlayers(2)

	require.Len(t, team.PlayerIDs, 2)

	err := team.AddPlayer(players[0])
	assert.ErrorIs(t, err, errs.ErrDuplicateMember)
	assert.Len(t, team.PlayerIDs, 2)

	require.NoError(t, team.AddPlayer(uuid.New()))

	err = team.AddPlayer(uuid.New())
	assert.ErrorIs(t, err, errs.ErrTeamFull)
	assert.Len(t, team.PlayerIDs, models.MaxTeamSize)
}

func TestTeam_AddPlayer_FullTeamRejectsEvenDuplicates(t *testing.T) {
	team, players := newTeamWithPlayers(3)

	// Capacity is checked before membership.
	err := team.AddPlayer(players[1])
	assert.ErrorIs(t, err, errs.ErrTeamFull)
}

func TestTeam_RemovePlayer(t *testing.T) {
	team, players := newTeamWithPlayers(3)

	changed := team.RemovePlayer(players[1])
	assert.True(t, changed)
	assert.Equal(t, models.UUIDList{players[0], players[2]}, team.PlayerIDs)
}

func TestTeam_RemovePlayer_NonMemberIsNoop(t *testing.T) {
	team, players := newTeamWithPlayers(2)

	changed := team.RemovePlayer(uuid.New())
	assert.False(t, changed)
	assert.Equal(t, models.UUIDList(players), team.PlayerIDs)
}

func TestTeam_NextRotation_CyclesInOrder(t *testing.T) {
	team, players := newTeamWithPlayers(3)

	// Two full cycles: describer visits 0,1,2,0,1,2; leader is always
	// one position ahead.
	for round := 0; round < 6; round++ {
		describer, leader, err := team.NextRotation()
		require.NoError(t, err)

		assert.Equal(t, players[round%3], describer, "round %d describer", round)
		assert.Equal(t, players[(round+1)%3], leader, "round %d leader", round)

		team.DescriberID = uuid.NullUUID{UUID: describer, Valid: true}
		team.LeaderID = uuid.NullUUID{UUID: leader, Valid: true}
	}
}

func TestTeam_NextRotation_SinglePlayer(t *testing.T) {
	team, players := newTeamWithPlayers(1)

	describer, leader, err := team.NextRotation()
	require.NoError(t, err)

	// Both roles collapse onto the only player.
	assert.Equal(t, players[0], describer)
	assert.Equal(t, players[0], leader)
}

func TestTeam_NextRotation_DepartedDescriberRestartsCycle(t *testing.T) {
	team, players := newTeamWithPlayers(3)

	team.DescriberID = uuid.NullUUID{UUID: players[1], Valid: true}
	require.True(t, team.RemovePlayer(players[1]))

	describer, leader, err := team.NextRotation()
	require.NoError(t, err)

	assert.Equal(t, players[0], describer)
	assert.Equal(t, players[2], leader)
}

func TestTeam_NextRotation_EmptyTeam(t *testing.T) {
	team := models.NewTeam(uuid.New(), "Blue")

	_, _, err := team.NextRotation()
	assert.ErrorIs(t, err, errs.ErrTeamEmpty)
}
