package usecase_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/domain/events"
	"github.com/aliasparty/backend/internal/domain/models"
)

// In-memory repository fakes. They return copies on reads so usecase
// mutations only become visible through an explicit update call, like
// with a real store.

type fakeRoomRepo struct {
	rooms []*models.Room

	deleteAllCalls int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	for _, r := range f.rooms {
		if r.Name == room.Name {
			return errs.ErrRoomNameTaken
		}
	}

	f.rooms = append(f.rooms, copyRoom(room))

	return nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			return copyRoom(r), nil
		}
	}

	return nil, errs.ErrRoomNotFound
}

func (f *fakeRoomRepo) GetAll(_ context.Context) ([]*models.Room, error) {
	rooms := make([]*models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		rooms = append(rooms, copyRoom(r))
	}

	return rooms, nil
}

func (f *fakeRoomRepo) UpdateTeamIDs(_ context.Context, id uuid.UUID, teamIDs models.UUIDList) error {
	for _, r := range f.rooms {
		if r.ID == id {
			r.TeamIDs = append(models.UUIDList{}, teamIDs...)
			return nil
		}
	}

	return errs.ErrRoomNotFound
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.rooms {
		if r.ID == id {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return nil
		}
	}

	return errs.ErrRoomNotFound
}

func (f *fakeRoomRepo) DeleteAll(_ context.Context) error {
	f.deleteAllCalls++
	f.rooms = nil

	return nil
}

type rolesUpdate struct {
	teamID      uuid.UUID
	describerID uuid.UUID
	leaderID    uuid.UUID
}

type fakeTeamRepo struct {
	teams []*models.Team

	updatePlayersCalls int
	rolesUpdates       []rolesUpdate
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	f.teams = append(f.teams, copyTeam(team))

	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return copyTeam(t), nil
		}
	}

	return nil, errs.ErrTeamNotFound
}

func (f *fakeTeamRepo) GetByRoomAndID(_ context.Context, roomID, teamID uuid.UUID) (*models.Team, error) {
	for _, t := range f.teams {
		if t.RoomID == roomID && t.ID == teamID {
			return copyTeam(t), nil
		}
	}

	return nil, errs.ErrTeamNotFound
}

func (f *fakeTeamRepo) ListByRoom(_ context.Context, roomID uuid.UUID) ([]*models.Team, error) {
	var teams []*models.Team
	for _, t := range f.teams {
		if t.RoomID == roomID {
			teams = append(teams, copyTeam(t))
		}
	}

	return teams, nil
}

func (f *fakeTeamRepo) ListAll(_ context.Context) ([]*models.Team, error) {
	teams := make([]*models.Team, 0, len(f.teams))
	for _, t := range f.teams {
		teams = append(teams, copyTeam(t))
	}

	return teams, nil
}

func (f *fakeTeamRepo) UpdatePlayers(_ context.Context, id uuid.UUID, playerIDs models.UUIDList) error {
	f.updatePlayersCalls++

	for _, t := range f.teams {
		if t.ID == id {
			t.PlayerIDs = append(models.UUIDList{}, playerIDs...)
			return nil
		}
	}

	return errs.ErrTeamNotFound
}

func (f *fakeTeamRepo) UpdateRoles(_ context.Context, id uuid.UUID, describerID, leaderID uuid.UUID) error {
	f.rolesUpdates = append(f.rolesUpdates, rolesUpdate{teamID: id, describerID: describerID, leaderID: leaderID})

	for _, t := range f.teams {
		if t.ID == id {
			t.DescriberID = uuid.NullUUID{UUID: describerID, Valid: true}
			t.LeaderID = uuid.NullUUID{UUID: leaderID, Valid: true}
			return nil
		}
	}

	return errs.ErrTeamNotFound
}

func (f *fakeTeamRepo) UpdateScore(_ context.Context, id uuid.UUID, score int) error {
	for _, t := range f.teams {
		if t.ID == id {
			t.Score = score
			return nil
		}
	}

	return errs.ErrTeamNotFound
}

func (f *fakeTeamRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.teams {
		if t.ID == id {
			f.teams = append(f.teams[:i], f.teams[i+1:]...)
			return nil
		}
	}

	return errs.ErrTeamNotFound
}

type fakeUserRepo struct {
	users []*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	return &fakeUserRepo{users: users}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return errs.ErrUsernameTaken
		}
	}

	c := *user
	f.users = append(f.users, &c)

	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}

	return nil, errs.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}

	return nil, errs.ErrUserNotFound
}

type fakeResultRepo struct {
	results []*models.RoundResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{}
}

func (f *fakeResultRepo) Create(_ context.Context, result *models.RoundResult) error {
	f.results = append(f.results, result)

	return nil
}

func (f *fakeResultRepo) SumByTeam(_ context.Context, teamID uuid.UUID) (int, error) {
	total := 0
	for _, r := range f.results {
		if r.TeamID == teamID {
			total += r.Points
		}
	}

	return total, nil
}

type broadcastRecord struct {
	roomID  uuid.UUID
	payload events.Outbound
}

type fakeSubsRepo struct {
	broadcasts []broadcastRecord
}

func newFakeSubsRepo() *fakeSubsRepo {
	return &fakeSubsRepo{}
}

func (f *fakeSubsRepo) Add(uuid.UUID, uuid.UUID, *websocket.Conn) {}

func (f *fakeSubsRepo) Remove(uuid.UUID, uuid.UUID) {}

func (f *fakeSubsRepo) Broadcast(roomID uuid.UUID, payload any) {
	f.BroadcastExcept(roomID, uuid.Nil, payload)
}

func (f *fakeSubsRepo) BroadcastExcept(roomID, _ uuid.UUID, payload any) {
	f.broadcasts = append(f.broadcasts, broadcastRecord{roomID: roomID, payload: payload.(events.Outbound)})
}

func copyRoom(r *models.Room) *models.Room {
	c := *r
	c.TeamIDs = append(models.UUIDList{}, r.TeamIDs...)

	return &c
}

func copyTeam(t *models.Team) *models.Team {
	c := *t
	c.PlayerIDs = append(models.UUIDList{}, t.PlayerIDs...)

	return &c
}
