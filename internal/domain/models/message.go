package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an append-only chat/game log entry scoped to a room.
type Message struct {
	ID        uuid.UUID `db:"id"`
	RoomID    uuid.UUID `db:"room_id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func NewMessage(roomID, authorID uuid.UUID, content string) *Message {
	return &Message{
		ID:        uuid.New(),
		RoomID:    roomID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
