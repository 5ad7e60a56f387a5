package handler

import (
	"context"

	"github.com/google/uuid"

	"roomchat/internal/app/message"
	"roomchat/internal/app/room"
	"roomchat/internal/app/user"
	"roomchat/internal/configs"
)

// UserStore is the credential store surface the handlers need.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// RoomStore is the room directory surface the handlers need.
type RoomStore interface {
	Create(ctx context.Context, name string) (*room.Room, error)
	List(ctx context.Context) ([]room.Room, error)
	Get(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

// MessageStore is the message log surface the handlers need.
type MessageStore interface {
	Append(ctx context.Context, roomID, userID uuid.UUID, content string) (*message.Message, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]message.Message, error)
}

// AppDeps bundles the dependencies injected into every handler. Nothing in
// the handlers reaches for ambient globals; configuration and stores arrive
// here at construction time.
type AppDeps struct {
	Config   *configs.AppConfig
	Users    UserStore
	Rooms    RoomStore
	Messages MessageStore
}
