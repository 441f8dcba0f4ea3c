package usecase

import (
	"context"
	"errors"
	"testing"

	"socialnet/internal/repo/inmemory"
	"socialnet/pkg/errs"
	"socialnet/pkg/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionUseCase_Likes(t *testing.T) {
	store := inmemory.NewStore()
	publisher := newRecordingPublisher()
	uc := NewInteractionUseCase(store.Posts(), store.Likes(), store.Comments(), publisher, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	post := createPost(t, store, ann, "hello")

	like, err := uc.Like(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, like.UserID)
	assert.False(t, like.CreatedAt.IsZero())

	event := publisher.next(t)
	assert.Equal(t, queue.EventPostLiked, event.Type)
	assert.Equal(t, ann.ID, event.UserID)
	assert.Equal(t, bob.ID, event.ActorID)
	assert.Equal(t, post.ID, event.PostID)

	_, err = uc.Like(ctx, bob.ID, post.ID)
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	_, err = uc.Like(ctx, ann.ID, post.ID)
	require.NoError(t, err)
	publisher.assertNone(t)

	likes, err := uc.ListLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	require.NoError(t, uc.Unlike(ctx, bob.ID, post.ID))
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(uc.Unlike(ctx, bob.ID, post.ID)))

	likes, err = uc.ListLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = uc.ListLikes(ctx, "missing")
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
	_, err = uc.Like(ctx, bob.ID, "missing")
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestInteractionUseCase_Comments(t *testing.T) {
	store := inmemory.NewStore()
	publisher := newRecordingPublisher()
	uc := NewInteractionUseCase(store.Posts(), store.Likes(), store.Comments(), publisher, testLogger())
	ctx := context.Background()
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	carl := createUser(t, store, "carl", "pw")
	post := createPost(t, store, ann, "hello")

	comment, err := uc.Comment(ctx, bob.ID, post.ID, "nice")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)

	event := publisher.next(t)
	assert.Equal(t, queue.EventPostCommented, event.Type)
	assert.Equal(t, comment.ID, event.CommentID)

	_, err = uc.Comment(ctx, bob.ID, post.ID, "  ")
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	second, err := uc.Comment(ctx, carl.ID, post.ID, "agreed")
	require.NoError(t, err)
	publisher.next(t)

	comments, err := uc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, comment.ID, comments[0].ID)

	assert.Equal(t, errs.EFORBIDDEN, errs.ErrorCode(uc.DeleteComment(ctx, carl.ID, comment.ID)))
	require.NoError(t, uc.DeleteComment(ctx, bob.ID, comment.ID))
	require.NoError(t, uc.DeleteComment(ctx, ann.ID, second.ID))

	comments, err = uc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestInteractionUseCase_PublishFailureDoesNotFailWrite(t *testing.T) {
	store := inmemory.NewStore()
	publisher := newRecordingPublisher()
	publisher.err = errors.New("broker down")
	uc := NewInteractionUseCase(store.Posts(), store.Likes(), store.Comments(), publisher, testLogger())
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	post := createPost(t, store, ann, "hello")

	_, err := uc.Like(context.Background(), bob.ID, post.ID)
	require.NoError(t, err)
	publisher.next(t)
}

func TestInteractionUseCase_NilPublisher(t *testing.T) {
	store := inmemory.NewStore()
	uc := NewInteractionUseCase(store.Posts(), store.Likes(), store.Comments(), nil, testLogger())
	ann := createUser(t, store, "ann", "pw")
	bob := createUser(t, store, "bob", "pw")
	post := createPost(t, store, ann, "hello")

	_, err := uc.Like(context.Background(), bob.ID, post.ID)
	assert.NoError(t, err)
}
