package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aliasparty/backend/internal/domain/models"
)

type RoundResultRepository interface {
	Create(ctx context.Context, result *models.RoundResult) error
	SumByTeam(ctx context.Context, teamID uuid.UUID) (int, error)
}

type roundResultRepo struct {
	db *sqlx.DB
}

func NewRoundResultRepo(db *sqlx.DB) RoundResultRepository {
	return &roundResultRepo{db: db}
}

func (r *roundResultRepo) Create(ctx context.Context, result *models.RoundResult) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO round_results (id, team_id, points, created_at) VALUES ($1, $2, $3, $4)",
		result.ID,
		result.TeamID,
		result.Points,
		result.CreatedAt,
	)

	return err
}

func (r *roundResultRepo) SumByTeam(ctx context.Context, teamID uuid.UUID) (int, error) {
	var total int

	err := r.db.GetContext(
		ctx,
		&total,
		"SELECT COALESCE(SUM(points), 0) FROM round_results WHERE team_id = $1",
		teamID,
	)
	if err != nil {
		return 0, err
	}

	return total, nil
}
