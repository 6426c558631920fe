package memory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/aliasparty/backend/internal/application/constant"
)

// RoomSubscribersRepository tracks which websocket connections are
// subscribed to which room and fans events out to them.
type RoomSubscribersRepository interface {
	Add(roomID, userID uuid.UUID, conn *websocket.Conn)
	Remove(roomID, userID uuid.UUID)
	Broadcast(roomID uuid.UUID, payload any)
	BroadcastExcept(roomID, excludeUserID uuid.UUID, payload any)
}

type safeWS struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *safeWS) writeJSON(payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.WriteJSON(payload)
}

type roomSubscribersRepository struct {
	// rooms хранит map[room_id]map[user_id]*ws.conn
	rooms map[uuid.UUID]map[uuid.UUID]*safeWS

	mu sync.RWMutex
}

func NewRoomSubscribersRepository() RoomSubscribersRepository {
	return &roomSubscribersRepository{
		rooms: make(map[uuid.UUID]map[uuid.UUID]*safeWS, 10),
	}
}

func (r *roomSubscribersRepository) Add(roomID, userID uuid.UUID, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.rooms[roomID]
	if !ok {
		subs = make(map[uuid.UUID]*safeWS, 8)
		r.rooms[roomID] = subs
	}

	subs[userID] = &safeWS{conn: conn}
}

func (r *roomSubscribersRepository) Remove(roomID, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.rooms[roomID]
	if !ok {
		return
	}

	delete(subs, userID)

	if len(subs) == 0 {
		delete(r.rooms, roomID)
	}
}

func (r *roomSubscribersRepository) Broadcast(roomID uuid.UUID, payload any) {
	r.BroadcastExcept(roomID, uuid.Nil, payload)
}

func (r *roomSubscribersRepository) BroadcastExcept(roomID, excludeUserID uuid.UUID, payload any) {
	for userID, ws := range r.snapshot(roomID) {
		if userID == excludeUserID {
			continue
		}

		if err := ws.writeJSON(payload); err != nil {
			slog.Error(
				"write to websocket",
				slog.Any(constant.UserID, userID),
				slog.Any(constant.Error, err),
			)
		}
	}
}

func (r *roomSubscribersRepository) snapshot(roomID uuid.UUID) map[uuid.UUID]*safeWS {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := make(map[uuid.UUID]*safeWS, len(r.rooms[roomID]))
	for userID, ws := range r.rooms[roomID] {
		subs[userID] = ws
	}

	return subs
}
