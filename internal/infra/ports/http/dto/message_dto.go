package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/models"
)

type PostMessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponseFromModel(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
