package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/domain/events"
	"github.com/aliasparty/backend/internal/domain/input"
	"github.com/aliasparty/backend/internal/domain/models"
	"github.com/aliasparty/backend/internal/usecase"
)

type fakeMessageRepo struct {
	messages []*models.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, message *models.Message) error {
	f.messages = append(f.messages, message)

	return nil
}

func (f *fakeMessageRepo) ListByRoom(_ context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	for _, m := range f.messages {
		if m.RoomID == roomID {
			messages = append(messages, m)
		}
	}

	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	return messages, nil
}

func TestMessageUsecase_Post_PersistsThenBroadcasts(t *testing.T) {
	ctx := context.Background()

	roomRepo := newFakeRoomRepo()
	messageRepo := &fakeMessageRepo{}
	subsRepo := newFakeSubsRepo()

	uc := usecase.NewMessageUsecase(roomRepo, messageRepo, subsRepo)

	room := models.NewRoom("Quick round", 60)
	require.NoError(t, roomRepo.Create(ctx, room))

	author := uuid.New()

	in, err := input.NewCreateMessageInput(room.ID, author, "guessed it!")
	require.NoError(t, err)

	message, err := uc.Post(ctx, in)
	require.NoError(t, err)

	require.Len(t, messageRepo.messages, 1)
	assert.Equal(t, message.ID, messageRepo.messages[0].ID)

	require.Len(t, subsRepo.broadcasts, 1)
	record := subsRepo.broadcasts[0]
	assert.Equal(t, room.ID, record.roomID)
	assert.Equal(t, events.TypeMessage, record.payload.Type)

	data, ok := record.payload.Data.(events.MessageEvent)
	require.True(t, ok)
	assert.Equal(t, message.ID, data.ID)
	assert.Equal(t, author, data.AuthorID)
	assert.Equal(t, "guessed it!", data.Content)
}

func TestMessageUsecase_Post_UnknownRoom(t *testing.T) {
	ctx := context.Background()

	roomRepo := newFakeRoomRepo()
	messageRepo := &fakeMessageRepo{}
	subsRepo := newFakeSubsRepo()

	uc := usecase.NewMessageUsecase(roomRepo, messageRepo, subsRepo)

	in, err := input.NewCreateMessageInput(uuid.New(), uuid.New(), "hello")
	require.NoError(t, err)

	_, err = uc.Post(ctx, in)
	assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	assert.Empty(t, messageRepo.messages)
	assert.Empty(t, subsRepo.broadcasts)
}

func TestMessageUsecase_ListByRoom(t *testing.T) {
	ctx := context.Background()

	roomRepo := newFakeRoomRepo()
	messageRepo := &fakeMessageRepo{}
	subsRepo := newFakeSubsRepo()

	uc := usecase.NewMessageUsecase(roomRepo, messageRepo, subsRepo)

	room := models.NewRoom("Quick round", 60)
	require.NoError(t, roomRepo.Create(ctx, room))

	author := uuid.New()
	for _, content := range []string{"one", "two", "three"} {
		in, err := input.NewCreateMessageInput(room.ID, author, content)
		require.NoError(t, err)

		_, err = uc.Post(ctx, in)
		require.NoError(t, err)
	}

	messages, err := uc.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "three", messages[2].Content)
}
