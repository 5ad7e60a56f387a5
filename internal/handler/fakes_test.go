package handler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomchat/internal/app/message"
	"roomchat/internal/app/room"
	"roomchat/internal/app/user"
	"roomchat/internal/configs"
)

// In-memory store fakes implementing the handler store interfaces. They mirror
// the store error contracts (sentinel errors for conflicts and missing rows)
// so handlers are exercised exactly as against PostgreSQL.

type fakeUserStore struct {
	mu    sync.Mutex
	users []*user.User
}

func (f *fakeUserStore) Create(ctx context.Context, username, passwordHash string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username {
			return nil, user.ErrUsernameTaken
		}
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

type fakeRoomStore struct {
	mu    sync.Mutex
	rooms []room.Room
}

func (f *fakeRoomStore) Create(ctx context.Context, name string) (*room.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rm := range f.rooms {
		if rm.Name == name {
			return nil, room.ErrNameTaken
		}
	}

	rm := room.Room{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.rooms = append(f.rooms, rm)
	return &rm, nil
}

func (f *fakeRoomStore) List(ctx context.Context) ([]room.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]room.Room, len(f.rooms))
	copy(out, f.rooms)
	return out, nil
}

func (f *fakeRoomStore) Get(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rm := range f.rooms {
		if rm.ID == id {
			found := rm
			return &found, nil
		}
	}
	return nil, room.ErrNotFound
}

type fakeMessageStore struct {
	mu       sync.Mutex
	rooms    *fakeRoomStore
	messages []message.Message
	clock    time.Time
}

func (f *fakeMessageStore) Append(ctx context.Context, roomID, userID uuid.UUID, content string) (*message.Message, error) {
	if _, err := f.rooms.Get(ctx, roomID); err != nil {
		return nil, message.ErrRoomNotFound
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Strictly advancing timestamps, matching the insert-time assignment of
	// the real store.
	if f.clock.IsZero() {
		f.clock = time.Now()
	}
	f.clock = f.clock.Add(time.Millisecond)

	m := message.Message{
		ID:        uuid.New(),
		RoomID:    roomID,
		UserID:    userID,
		Content:   content,
		Timestamp: f.clock,
	}
	f.messages = append(f.messages, m)
	return &m, nil
}

func (f *fakeMessageStore) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]message.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []message.Message{}
	for _, m := range f.messages {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

// newTestDeps wires the fakes into an AppDeps with a short-TTL test config.
func newTestDeps() *AppDeps {
	users := &fakeUserStore{}
	rooms := &fakeRoomStore{}
	messages := &fakeMessageStore{rooms: rooms}

	return &AppDeps{
		Config: &configs.AppConfig{
			Environment: "development",
			Port:        8080,
			JWTSecret:   "handler-test-secret",
			TokenTTL:    configs.DefaultTokenTTL,
		},
		Users:    users,
		Rooms:    rooms,
		Messages: messages,
	}
}
