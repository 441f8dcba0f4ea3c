package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"socialnet/internal/entity"
	"socialnet/internal/repo/inmemory"
	"socialnet/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_Create(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewUserUseCase(store.Users(), nil, nil, testLogger())
	ctx := context.Background()

	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	user, err := uc.Create(ctx, &entity.User{Name: "Ann", Username: "ann", Password: "secret", Active: true, BirthDate: &birth})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password)
	assert.True(t, user.Active)
	assert.Equal(t, birth, *user.BirthDate)

	stored, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
	cost, err := bcrypt.Cost([]byte(stored.Password))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	_, err = uc.Create(ctx, &entity.User{Name: "Other Ann", Username: "ann", Password: "pw"})
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	_, err = uc.Create(ctx, &entity.User{Name: "Bob", Username: "bob smith", Password: "pw"})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestUserUseCase_GetAndList(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewUserUseCase(store.Users(), nil, nil, testLogger())
	ctx := context.Background()

	ann := createUser(t, store, "ann", "pw")
	createUser(t, store, "bob", "pw")

	got, err := uc.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Username)
	assert.Empty(t, got.Password)

	_, err = uc.GetByID(ctx, "missing")
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	users, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestUserUseCase_Update(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewUserUseCase(store.Users(), nil, nil, testLogger())
	ctx := context.Background()

	ann := createUser(t, store, "ann", "pw")
	createUser(t, store, "bob", "pw")

	username := "annie"
	inactive := false
	updated, err := uc.Update(ctx, ann.ID, entity.UserPatch{Username: &username, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "annie", updated.Username)
	assert.Equal(t, "ann", updated.Name)
	assert.False(t, updated.Active)
	assert.Empty(t, updated.Password)

	stored, err := store.Users().GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "annie", stored.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))

	same := "annie"
	_, err = uc.Update(ctx, ann.ID, entity.UserPatch{Username: &same})
	assert.NoError(t, err)

	taken := "bob"
	_, err = uc.Update(ctx, ann.ID, entity.UserPatch{Username: &taken})
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	_, err = uc.Update(ctx, "missing", entity.UserPatch{})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestUserUseCase_Delete(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewUserUseCase(store.Users(), nil, nil, testLogger())
	ctx := context.Background()

	ann := createUser(t, store, "ann", "pw")
	post := createPost(t, store, ann, "hello")

	require.NoError(t, uc.Delete(ctx, ann.ID))

	_, err := uc.GetByID(ctx, ann.ID)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
	_, err = store.Posts().GetByID(ctx, post.ID)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(uc.Delete(ctx, ann.ID)))
}

func TestUserUseCase_UploadProfileImage(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		store := inmemory.NewStore()
		ann := createUser(t, store, "ann", "pw")
		uc := NewUserUseCase(store.Users(), nil, nil, testLogger())

		_, err := uc.UploadProfileImage(ctx, ann.ID, strings.NewReader("img"), "me.png", "image/png")
		assert.Equal(t, errs.EUNAVAILABLE, errs.ErrorCode(err))
	})

	t.Run("uploads and stores url", func(t *testing.T) {
		store := inmemory.NewStore()
		ann := createUser(t, store, "ann", "pw")
		storage := new(MockObjectStorage)
		uc := NewUserUseCase(store.Users(), storage, nil, testLogger())

		keyMatcher := mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "avatars/"+ann.ID+"/") && strings.HasSuffix(key, ".png")
		})
		storage.On("UploadFile", keyMatcher, mock.Anything, "image/png").
			Return("http://storage/avatars/me.png", nil)

		user, err := uc.UploadProfileImage(ctx, ann.ID, strings.NewReader("img"), "me.png", "image/png")
		require.NoError(t, err)
		assert.Equal(t, "http://storage/avatars/me.png", user.ProfileImage)

		stored, err := store.Users().GetByID(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "http://storage/avatars/me.png", stored.ProfileImage)
		storage.AssertExpectations(t)
	})

	t.Run("upload failure", func(t *testing.T) {
		store := inmemory.NewStore()
		ann := createUser(t, store, "ann", "pw")
		storage := new(MockObjectStorage)
		uc := NewUserUseCase(store.Users(), storage, nil, testLogger())

		storage.On("UploadFile", mock.Anything, mock.Anything, "image/jpeg").Return("", errors.New("bucket gone"))

		_, err := uc.UploadProfileImage(ctx, ann.ID, strings.NewReader("img"), "me", "")
		require.Error(t, err)
		assert.Equal(t, errs.EINTERNAL, errs.ErrorCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		store := inmemory.NewStore()
		storage := new(MockObjectStorage)
		uc := NewUserUseCase(store.Users(), storage, nil, testLogger())

		_, err := uc.UploadProfileImage(ctx, "missing", strings.NewReader("img"), "me.png", "image/png")
		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
		storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	})
}
