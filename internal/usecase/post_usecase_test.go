package usecase

import (
	"context"
	"testing"

	"socialnet/internal/entity"
	"socialnet/internal/repo/inmemory"
	"socialnet/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostUseCase_Create(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")

	post, err := uc.Create(ctx, ann.ID, &entity.Post{Description: "hello", Image: []byte{1, 2, 3}, UserID: bob.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, ann.ID, post.UserID)
	assert.Equal(t, []byte{1, 2, 3}, post.Image)
	require.NotNil(t, post.User)
	assert.Equal(t, "ann", post.User.Username)

	_, err = uc.Create(ctx, ann.ID, &entity.Post{})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	_, err = uc.Create(ctx, "", &entity.Post{Description: "x"})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestPostUseCase_GetByID(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	post := createPost(t, store, ann, "hello")

	first, err := uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	second, err := uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	missing, err := uc.GetByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostUseCase_List(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")

	posts, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	createPost(t, store, ann, "first")
	createPost(t, store, ann, "second")

	posts, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Description)
}

func TestPostUseCase_Update(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	post := createPost(t, store, ann, "hello")

	updated, err := uc.Update(ctx, ann.ID, &entity.Post{ID: post.ID, Description: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Description)
	assert.Equal(t, ann.ID, updated.UserID)

	_, err = uc.Update(ctx, bob.ID, &entity.Post{ID: post.ID, Description: "hijack"})
	assert.Equal(t, errs.EFORBIDDEN, errs.ErrorCode(err))

	stored, err := uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Description)

	_, err = uc.Update(ctx, ann.ID, &entity.Post{ID: "missing", Description: "x"})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	_, err = uc.Update(ctx, ann.ID, &entity.Post{ID: post.ID, Description: ""})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestPostUseCase_Delete(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	post := createPost(t, store, ann, "hello")

	assert.Equal(t, errs.EFORBIDDEN, errs.ErrorCode(uc.Delete(ctx, bob.ID, post.ID)))
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(uc.Delete(ctx, ann.ID, "missing")))

	require.NoError(t, uc.Delete(ctx, ann.ID, post.ID))

	got, err := uc.GetByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostUseCase_UpdateImage(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewPostUseCase(store.Posts(), nil, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")

	post, err := uc.Create(ctx, ann.ID, &entity.Post{Description: "hello", Image: []byte{1, 2, 3}})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, ann.ID, &entity.Post{ID: post.ID, Description: "text only"})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, updated.Image)

	stored, err := uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "text only", stored.Description)
	assert.Equal(t, []byte{1, 2, 3}, stored.Image)

	updated, err = uc.Update(ctx, ann.ID, &entity.Post{ID: post.ID, Description: "new image", Image: []byte{9}})
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, updated.Image)

	updated, err = uc.Update(ctx, ann.ID, &entity.Post{ID: post.ID, Description: "no image", Image: []byte{}})
	require.NoError(t, err)
	assert.Nil(t, updated.Image)

	stored, err = uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Image)
}
