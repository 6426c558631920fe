package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/domain/models"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetAll(ctx context.Context) ([]*models.Room, error)
	UpdateTeamIDs(ctx context.Context, id uuid.UUID, teamIDs models.UUIDList) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type roomRepo struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO rooms (id, name, turn_duration, team_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID,
		room.Name,
		room.TurnDuration,
		room.TeamIDs,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return errs.ErrRoomNameTaken
	}

	return err
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room

	err := r.db.GetContext(ctx, &room, "SELECT * FROM rooms WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *roomRepo) GetAll(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room

	err := r.db.SelectContext(ctx, &rooms, "SELECT * FROM rooms ORDER BY created_at")
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepo) UpdateTeamIDs(ctx context.Context, id uuid.UUID, teamIDs models.UUIDList) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE rooms SET team_ids = $1, updated_at = $2 WHERE id = $3",
		teamIDs,
		time.Now(),
		id,
	)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrRoomNotFound)
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrRoomNotFound)
}

func (r *roomRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM rooms")

	return err
}
