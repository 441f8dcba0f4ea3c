package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"socialnet/internal/entity"
	"socialnet/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const postCacheTTL = 10 * time.Minute

// postCache is a read-through cache of single posts. Every cached post is
// also indexed under its author so that user deletes and renames can drop
// the entries carrying a stale author summary. A nil *postCache is a no-op.
type postCache struct {
	client *redis.Client
	logger *logger.Logger
}

func newPostCache(client *redis.Client, logger *logger.Logger) *postCache {
	if client == nil {
		return nil
	}
	return &postCache{client: client, logger: logger}
}

func postKey(postID string) string {
	return fmt.Sprintf("post:%s", postID)
}

func authorPostsKey(userID string) string {
	return fmt.Sprintf("post_cache:author:%s", userID)
}

func (pc *postCache) get(ctx context.Context, postID string) *entity.Post {
	if pc == nil {
		return nil
	}

	data, err := pc.client.Get(ctx, postKey(postID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			pc.logger.Warn("Failed to read post %s from cache: %v", postID, err)
		}
		return nil
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		pc.logger.Warn("Discarding malformed cache entry for post %s: %v", postID, err)
		return nil
	}
	return &post
}

func (pc *postCache) set(ctx context.Context, post *entity.Post) {
	if pc == nil {
		return
	}

	data, err := json.Marshal(post)
	if err != nil {
		return
	}

	index := authorPostsKey(post.UserID)
	_, err = pc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, postKey(post.ID), data, postCacheTTL)
		pipe.SAdd(ctx, index, post.ID)
		pipe.Expire(ctx, index, postCacheTTL)
		return nil
	})
	if err != nil {
		pc.logger.Warn("Failed to cache post %s: %v", post.ID, err)
	}
}

func (pc *postCache) invalidate(ctx context.Context, postID string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, postKey(postID)).Err(); err != nil {
		pc.logger.Warn("Failed to invalidate cached post %s: %v", postID, err)
	}
}

// invalidateAuthor drops every cached post written by userID.
func (pc *postCache) invalidateAuthor(ctx context.Context, userID string) {
	if pc == nil {
		return
	}

	index := authorPostsKey(userID)
	postIDs, err := pc.client.SMembers(ctx, index).Result()
	if err != nil {
		pc.logger.Warn("Failed to read cached posts of user %s: %v", userID, err)
		return
	}

	keys := make([]string, 0, len(postIDs)+1)
	for _, postID := range postIDs {
		keys = append(keys, postKey(postID))
	}
	keys = append(keys, index)

	if err := pc.client.Del(ctx, keys...).Err(); err != nil {
		pc.logger.Warn("Failed to invalidate cached posts of user %s: %v", userID, err)
	}
}
