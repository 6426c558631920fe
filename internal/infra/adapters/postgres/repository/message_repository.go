package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aliasparty/backend/internal/domain/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error)
}

type messageRepo struct {
	db *sqlx.DB
}

func NewMessageRepo(db *sqlx.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO messages (id, room_id, author_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		message.ID,
		message.RoomID,
		message.AuthorID,
		message.Content,
		message.CreatedAt,
	)

	return err
}

// ListByRoom returns the latest limit messages, oldest first.
func (r *messageRepo) ListByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error) {
	var messages []*models.Message

	query := `
		SELECT * FROM (
			SELECT * FROM messages WHERE room_id = $1 ORDER BY created_at DESC LIMIT $2
		) m ORDER BY m.created_at
	`

	err := r.db.SelectContext(ctx, &messages, query, roomID, limit)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
