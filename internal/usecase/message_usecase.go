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

const defaultHistoryLimit = 100

type MessageUsecase interface {
	Post(ctx context.Context, in *input.CreateMessageInput) (*models.Message, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*models.Message, error)
}

type messageUsecase struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
	subsRepo    memory.RoomSubscribersRepository
}

func NewMessageUsecase(
	roomRepo repository.RoomRepository,
	messageRepo repository.MessageRepository,
	subsRepo memory.RoomSubscribersRepository,
) MessageUsecase {
	return &messageUsecase{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		subsRepo:    subsRepo,
	}
}

// Post persists the message, then broadcasts it to the room. The log
// write comes first so subscribers never see a message that is not in
// the history.
func (uc *messageUsecase) Post(ctx context.Context, in *input.CreateMessageInput) (*models.Message, error) {
	if _, err := uc.roomRepo.GetByID(ctx, in.RoomID); err != nil {
		return nil, err
	}

	message := models.NewMessage(in.RoomID, in.AuthorID, in.Content)

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	uc.subsRepo.Broadcast(in.RoomID, events.Outbound{
		Type: events.TypeMessage,
		Data: events.MessageEvent{
			ID:        message.ID,
			RoomID:    message.RoomID,
			AuthorID:  message.AuthorID,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		},
	})

	return message, nil
}

func (uc *messageUsecase) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*models.Message, error) {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	return uc.messageRepo.ListByRoom(ctx, roomID, defaultHistoryLimit)
}
