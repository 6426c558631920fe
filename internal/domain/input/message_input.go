package input

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aliasparty/backend/internal/domain/errs"
)

const maxMessageLen = 1024

type CreateMessageInput struct {
	RoomID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

func NewCreateMessageInput(roomID, authorID uuid.UUID, content string) (*CreateMessageInput, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", errs.ErrInvalidInput)
	}

	if len(content) > maxMessageLen {
		return nil, fmt.Errorf("%w: message longer than %d characters", errs.ErrInvalidInput, maxMessageLen)
	}

	return &CreateMessageInput{RoomID: roomID, AuthorID: authorID, Content: content}, nil
}
