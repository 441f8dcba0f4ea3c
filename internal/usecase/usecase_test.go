package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"socialnet/internal/entity"
	"socialnet/internal/repo/inmemory"
	"socialnet/pkg/logger"
	"socialnet/pkg/queue"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.NewWithLevel("error")
}

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type recordingPublisher struct {
	events chan queue.Event
	err    error
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan queue.Event, 16)}
}

func (p *recordingPublisher) Publish(_ context.Context, event queue.Event) error {
	p.events <- event
	return p.err
}

func (p *recordingPublisher) next(t *testing.T) queue.Event {
	t.Helper()
	select {
	case event := <-p.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return queue.Event{}
	}
}

func (p *recordingPublisher) assertNone(t *testing.T) {
	t.Helper()
	select {
	case event := <-p.events:
		t.Fatalf("unexpected event %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// createUser stores a user through the user usecase so the password is
// hashed like in production.
func createUser(t *testing.T, store *inmemory.Store, username, password string) *entity.User {
	t.Helper()
	uc := NewUserUseCase(store.Users(), nil, nil, testLogger())
	user, err := uc.Create(context.Background(), &entity.User{
		Name:     username,
		Username: username,
		Password: password,
		Active:   true,
	})
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, store *inmemory.Store, owner *entity.User, description string) *entity.Post {
	t.Helper()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	post, err := uc.Create(context.Background(), owner.ID, &entity.Post{Description: description})
	require.NoError(t, err)
	return post
}
