package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types broadcast to room subscribers.
const (
	TypeMessage       = "message"
	TypeUserJoined    = "user_joined"
	TypeUserLeft      = "user_left"
	TypeTeamRotated   = "team_rotated"
	TypeScoresUpdated = "scores_updated"
)

// Inbound websocket frame.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// JoinEvent subscribes the connection to a room.
type JoinEvent struct {
	RoomID uuid.UUID `json:"room_id"`
}

// ChatEvent is an inbound chat message; the outbound counterpart is
// MessageEvent, sent after the message is persisted.
type ChatEvent struct {
	Content string `json:"content"`
}

type MessageEvent struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type UserEvent struct {
	UserID uuid.UUID `json:"user_id"`
	RoomID uuid.UUID `json:"room_id"`
}

type TeamRotatedEvent struct {
	RoomID      uuid.UUID `json:"room_id"`
	TeamID      uuid.UUID `json:"team_id"`
	DescriberID uuid.UUID `json:"describer_id"`
	LeaderID    uuid.UUID `json:"leader_id"`
}

type TeamScore struct {
	TeamID uuid.UUID `json:"team_id"`
	Score  int       `json:"score"`
}

type ScoresUpdatedEvent struct {
	RoomID uuid.UUID   `json:"room_id"`
	Scores []TeamScore `json:"scores"`
}

// Outbound envelope.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
