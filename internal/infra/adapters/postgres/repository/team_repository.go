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

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByRoomAndID(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error)
	ListAll(ctx context.Context) ([]*models.Team, error)
	UpdatePlayers(ctx context.Context, id uuid.UUID, playerIDs models.UUIDList) error
	UpdateRoles(ctx context.Context, id uuid.UUID, describerID, leaderID uuid.UUID) error
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teamRepo struct {
	db *sqlx.DB
}

func NewTeamRepo(db *sqlx.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) Create(ctx context.Context, team *models.Team) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO teams (id, room_id, name, player_ids, describer_id, leader_id, score, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		team.ID,
		team.RoomID,
		team.Name,
		team.PlayerIDs,
		team.DescriberID,
		team.LeaderID,
		team.Score,
		team.CreatedAt,
		team.UpdatedAt,
	)

	return err
}

func (r *teamRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team

	err := r.db.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *teamRepo) GetByRoomAndID(ctx context.Context, roomID, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team

	err := r.db.GetContext(
		ctx,
		&team,
		"SELECT * FROM teams WHERE room_id = $1 AND id = $2",
		roomID,
		teamID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *teamRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*models.Team, error) {
	var teams []*models.Team

	err := r.db.SelectContext(
		ctx,
		&teams,
		"SELECT * FROM teams WHERE room_id = $1 ORDER BY created_at",
		roomID,
	)
	if err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepo) ListAll(ctx context.Context) ([]*models.Team, error) {
	var teams []*models.Team

	err := r.db.SelectContext(ctx, &teams, "SELECT * FROM teams ORDER BY created_at")
	if err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepo) UpdatePlayers(ctx context.Context, id uuid.UUID, playerIDs models.UUIDList) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE teams SET player_ids = $1, updated_at = $2 WHERE id = $3",
		playerIDs,
		time.Now(),
		id,
	)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrTeamNotFound)
}

// UpdateRoles persists describer and leader in a single statement, so a
// concurrent reader never observes a half-rotated team.
func (r *teamRepo) UpdateRoles(ctx context.Context, id uuid.UUID, describerID, leaderID uuid.UUID) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE teams SET describer_id = $1, leader_id = $2, updated_at = $3 WHERE id = $4",
		describerID,
		leaderID,
		time.Now(),
		id,
	)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrTeamNotFound)
}

func (r *teamRepo) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE teams SET score = $1, updated_at = $2 WHERE id = $3",
		score,
		time.Now(),
		id,
	)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrTeamNotFound)
}

func (r *teamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return err
	}

	return checkAffected(res, errs.ErrTeamNotFound)
}
