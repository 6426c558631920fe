package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

func NewUser(username, passwordHash string) *User {
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
}
