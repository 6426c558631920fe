package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/events"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/domain/models"
	"github.com/aliasparty/backend/internal/infra/adapters/memory"
	"github.com/aliasparty/backend/internal/infra/adapters/postgres/repository"
)

type TeamUsecase interface {
	CreateTeam(ctx context.Context, in *input.CreateTeamInput) (*models.Team, error)
	GetTeam(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error)
	DeleteTeam(ctx context.Context, roomID, teamID uuid.UUID) error

	AddPlayer(ctx context.Context, roomID, teamID, playerID uuid.UUID) (*models.Team, error)
	RemovePlayer(ctx context.Context, roomID, teamID, playerID uuid.UUID) (*models.Team, error)
	Rotate(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error)
	RecordResult(ctx context.Context, roomID uuid.UUID, in *input.RecordResultInput) (*models.RoundResult, error)
}

type teamUsecase struct {
	roomRepo   repository.RoomRepository
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
	resultRepo repository.RoundResultRepository
	subsRepo   memory.RoomSubscribersRepository
}

func NewTeamUsecase(
	roomRepo repository.RoomRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	resultRepo repository.RoundResultRepository,
	subsRepo memory.RoomSubscribersRepository,
) TeamUsecase {
	return &teamUsecase{
		roomRepo:   roomRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		resultRepo: resultRepo,
		subsRepo:   subsRepo,
	}
}

// CreateTeam inserts the team and appends its id to the owning room's
// ordered team list.
func (uc *teamUsecase) CreateTeam(ctx context.Context, in *input.CreateTeamInput) (*models.Team, error) {
	room, err := uc.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	team := models.NewTeam(room.ID, in.Name)

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	if err := uc.roomRepo.UpdateTeamIDs(ctx, room.ID, append(room.TeamIDs, team.ID)); err != nil {
		return nil, fmt.Errorf("attach team to room: %w", err)
	}

	return team, nil
}

func (uc *teamUsecase) GetTeam(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error) {
	return uc.teamRepo.GetByRoomAndID(ctx, roomID, teamID)
}

func (uc *teamUsecase) ListTeams(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error) {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	return uc.teamRepo.ListByRoom(ctx, roomID)
}

func (uc *teamUsecase) DeleteTeam(ctx context.Context, roomID, teamID uuid.UUID) error {
	team, err := uc.teamRepo.GetByRoomAndID(ctx, roomID, teamID)
	if err != nil {
		return err
	}

	if err := uc.teamRepo.Delete(ctx, team.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}

	teamIDs := room.TeamIDs
	if idx := teamIDs.IndexOf(team.ID); idx >= 0 {
		teamIDs = append(teamIDs[:idx], teamIDs[idx+1:]...)
	}

	if err := uc.roomRepo.UpdateTeamIDs(ctx, room.ID, teamIDs); err != nil {
		return fmt.Errorf("detach team from room: %w", err)
	}

	return nil
}

// AddPlayer appends the player to the team roster. Capacity and
// duplicate checks live on the model; the player must exist in the
// user directory.
func (uc *teamUsecase) AddPlayer(ctx context.Context, roomID, teamID, playerID uuid.UUID) (*models.Team, error) {
	team, err := uc.teamRepo.GetByRoomAndID(ctx, roomID, teamID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	if err := team.AddPlayer(playerID); err != nil {
		return nil, err
	}

	if err := uc.teamRepo.UpdatePlayers(ctx, team.ID, team.PlayerIDs); err != nil {
		return nil, fmt.Errorf("update team players: %w", err)
	}

	return team, nil
}

// RemovePlayer drops the player from the roster. Removing a non-member
// is a no-op returning the unchanged team.
func (uc *teamUsecase) RemovePlayer(ctx context.Context, roomID, teamID, playerID uuid.UUID) (*models.Team, error) {
	team, err := uc.teamRepo.GetByRoomAndID(ctx, roomID, teamID)
	if err != nil {
		return nil, err
	}

	if !team.RemovePlayer(playerID) {
		return team, nil
	}

	if err := uc.teamRepo.UpdatePlayers(ctx, team.ID, team.PlayerIDs); err != nil {
		return nil, fmt.Errorf("update team players: %w", err)
	}

	return team, nil
}

// Rotate advances describer and leader one position each, wrapping
// around the roster, and persists both roles in a single update.
func (uc *teamUsecase) Rotate(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error) {
	team, err := uc.teamRepo.GetByRoomAndID(ctx, roomID, teamID)
	if err != nil {
		return nil, err
	}

	describer, leader, err := team.NextRotation()
	if err != nil {
		return nil, err
	}

	if err := uc.teamRepo.UpdateRoles(ctx, team.ID, describer, leader); err != nil {
		return nil, fmt.Errorf("update team roles: %w", err)
	}

	team.DescriberID = uuid.NullUUID{UUID: describer, Valid: true}
	team.LeaderID = uuid.NullUUID{UUID: leader, Valid: true}

	uc.subsRepo.Broadcast(roomID, events.Outbound{
		Type: events.TypeTeamRotated,
		Data: events.TeamRotatedEvent{
			RoomID:      roomID,
			TeamID:      team.ID,
			DescriberID: describer,
			LeaderID:    leader,
		},
	})

	return team, nil
}

func (uc *teamUsecase) RecordResult(ctx context.Context, roomID uuid.UUID, in *input.RecordResultInput) (*models.RoundResult, error) {
	team, err := uc.teamRepo.GetByRoomAndID(ctx, roomID, in.TeamID)
	if err != nil {
		return nil, err
	}

	result := models.NewRoundResult(team.ID, in.Points)

	if err := uc.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("create round result: %w", err)
	}

	return result, nil
}
