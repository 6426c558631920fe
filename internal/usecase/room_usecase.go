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

type RoomUsecase interface {
	CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	RecalculateScores(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error)
}

type roomUsecase struct {
	roomRepo   repository.RoomRepository
	teamRepo   repository.TeamRepository
	resultRepo repository.RoundResultRepository
	subsRepo   memory.RoomSubscribersRepository
}

func NewRoomUsecase(
	roomRepo repository.RoomRepository,
	teamRepo repository.TeamRepository,
	resultRepo repository.RoundResultRepository,
	subsRepo memory.RoomSubscribersRepository,
) RoomUsecase {
	return &roomUsecase{
		roomRepo:   roomRepo,
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		subsRepo:   subsRepo,
	}
}

func (uc *roomUsecase) CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*models.Room, error) {
	room := models.NewRoom(in.Name, in.TurnDuration)

	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (uc *roomUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	return uc.roomRepo.GetByID(ctx, id)
}

func (uc *roomUsecase) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return uc.roomRepo.GetAll(ctx)
}

func (uc *roomUsecase) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return uc.roomRepo.Delete(ctx, id)
}

// RecalculateScores rebuilds every team score in the room from the
// accumulated round results and pushes the updated scores to the
// room's subscribers.
func (uc *roomUsecase) RecalculateScores(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error) {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	teams, err := uc.teamRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	scores := make([]events.TeamScore, 0, len(teams))

	for _, team := range teams {
		total, err := uc.resultRepo.SumByTeam(ctx, team.ID)
		if err != nil {
			return nil, fmt.Errorf("sum round results: %w", err)
		}

		if err := uc.teamRepo.UpdateScore(ctx, team.ID, total); err != nil {
			return nil, fmt.Errorf("update team score: %w", err)
		}

		team.Score = total
		scores = append(scores, events.TeamScore{TeamID: team.ID, Score: total})
	}

	uc.subsRepo.Broadcast(roomID, events.Outbound{
		Type: events.TypeScoresUpdated,
		Data: events.ScoresUpdatedEvent{RoomID: roomID, Scores: scores},
	})

	return teams, nil
}
