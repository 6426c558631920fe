package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/domain/models"
	"github.com/aliasparty/backend/internal/infra/adapters/postgres/repository"
)

type defaultRoomSpec struct {
	name         string
	turnDuration int
}

var defaultRooms = []defaultRoomSpec{
	{name: "Quick round", turnDuration: 60},
	{name: "Marathon", turnDuration: 90},
}

var defaultTeamNames = []string{"Red", "Green", "Blue"}

// Bootstrapper wipes and reseeds the default rooms on startup. Every
// run deletes all existing rooms (teams go with them) and recreates the
// fixed set, each with three empty teams attached in creation order.
// Any failure aborts startup rather than leaving the store half-seeded.
type Bootstrapper struct {
	roomRepo repository.RoomRepository
	teamRepo repository.TeamRepository
}

func NewBootstrapper(roomRepo repository.RoomRepository, teamRepo repository.TeamRepository) *Bootstrapper {
	return &Bootstrapper{
		roomRepo: roomRepo,
		teamRepo: teamRepo,
	}
}

func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.roomRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all rooms: %w", err)
	}

	for _, spec := range defaultRooms {
		room := models.NewRoom(spec.name, spec.turnDuration)

		if err := b.roomRepo.Create(ctx, room); err != nil {
			return fmt.Errorf("create default room %q: %w", spec.name, err)
		}

		teamIDs := make(models.UUIDList, 0, len(defaultTeamNames))

		for _, teamName := range defaultTeamNames {
			team := models.NewTeam(room.ID, teamName)

			if err := b.teamRepo.Create(ctx, team); err != nil {
				return fmt.Errorf("create default team %q: %w", teamName, err)
			}

			teamIDs = append(teamIDs, team.ID)
		}

		if err := b.roomRepo.UpdateTeamIDs(ctx, room.ID, teamIDs); err != nil {
			return fmt.Errorf("attach default teams: %w", err)
		}

		slog.Info("seeded default room", slog.Any(constant.RoomID, room.ID), slog.String("name", room.Name))
	}

	return nil
}
