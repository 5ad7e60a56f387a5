/*
Package room is the room directory: it persists chat rooms and supports
create, list and lookup. Rooms are immutable and never deleted.
*/
package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roomchat/internal/app/db"
)

var (
	// ErrNameTaken is returned by Create when the room name already exists.
	ErrNameTaken = errors.New("room name already taken")

	// ErrNotFound is returned by Get when no such room exists.
	ErrNotFound = errors.New("room not found")
)

// Room is a named chat room.
type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// Store persists rooms in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts a new room. Name uniqueness is enforced by the database
// constraint, so concurrent duplicate creates resolve to exactly one winner.
func (s *Store) Create(ctx context.Context, name string) (*Room, error) {
	const query = `
		INSERT INTO rooms (name)
		VALUES ($1)
		RETURNING id, name, created_at`

	var rm Room
	err := s.pool.QueryRow(ctx, query, name).Scan(&rm.ID, &rm.Name, &rm.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return &rm, nil
}

// List returns all rooms in insertion order.
func (s *Store) List(ctx context.Context) ([]Room, error) {
	const query = `
		SELECT id, name, created_at
		FROM rooms
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []Room{}
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, rows.Err()
}

// Get resolves a room by id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	const query = `
		SELECT id, name, created_at
		FROM rooms
		WHERE id = $1`

	var rm Room
	err := s.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &rm, nil
}
