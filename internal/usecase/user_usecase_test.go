package usecase_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliasparty/backend/internal/usecase"
)

func TestUserUsecase_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	secret := []byte("test-secret")

	userRepo := newFakeUserRepo()
	uc := usecase.NewUserUsecase(secret, userRepo)

	user, err := uc.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password, "password hash must not leak")

	token, err := uc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	uc := usecase.NewUserUsecase([]byte("test-secret"), userRepo)

	_, err := uc.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestUserUsecase_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	uc := usecase.NewUserUsecase([]byte("test-secret"), userRepo)

	_, err := uc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}
