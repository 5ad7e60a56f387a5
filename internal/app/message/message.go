/*
Package message is the message log: an append-only store of room messages
retrieved in timestamp order.

Timestamps are assigned by the database at insert time and returned with the
stored row, so the persisted value and the response value are always the same.
*/
package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"roomchat/internal/app/db"
)

// ErrRoomNotFound is returned by Append when room_id references no room.
var ErrRoomNotFound = errors.New("room not found")

// Message is one immutable entry in a room's log.
type Message struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Store persists messages in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Append inserts a message into the room's log. The timestamp comes from the
// insert itself. Callers existence-check the room first; the foreign key is
// the backstop against the room reference going stale between check and
// insert.
func (s *Store) Append(ctx context.Context, roomID, userID uuid.UUID, content string) (*Message, error) {
	const query = `
		INSERT INTO messages (room_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, room_id, user_id, content, created_at`

	var m Message
	err := s.pool.QueryRow(ctx, query, roomID, userID, content).
		Scan(&m.ID, &m.RoomID, &m.UserID, &m.Content, &m.Timestamp)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &m, nil
}

// ListByRoom returns the room's messages ascending by timestamp.
func (s *Store) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]Message, error) {
	const query = `
		SELECT id, room_id, user_id, content, created_at
		FROM messages
		WHERE room_id = $1
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.UserID, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
