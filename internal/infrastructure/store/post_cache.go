package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// PostCacheStore is the Redis-backed IPostCache.
type PostCacheStore struct {
	rdb       redis.Cmdable
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IPostCache = (*PostCacheStore)(nil)

func NewPostCacheStore(rdb redis.Cmdable) *PostCacheStore {
	return &PostCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   5 * time.Minute,
	}
}

func postDetailKey(slug string) string { return fmt.Sprintf("post:slug:%s", slug) }

func (c *PostCacheStore) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, bool, error) {
	b, err := c.rdb.Get(ctx, postDetailKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var post entity.Post
	if err := json.Unmarshal(b, &post); err != nil {
		// a corrupt entry is treated as a miss and overwritten on the next set
		return nil, false, nil
	}
	return &post, true, nil
}

func (c *PostCacheStore) SetPostBySlug(ctx context.Context, slug string, post *entity.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postDetailKey(slug), data, c.detailTTL).Err()
}

func (c *PostCacheStore) InvalidatePostBySlug(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, postDetailKey(slug)).Err()
}

func (c *PostCacheStore) GetPostsPage(ctx context.Context, key string) (*contract.CachedPostsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedPostsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *PostCacheStore) SetPostsPage(ctx context.Context, key string, page *contract.CachedPostsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidatePostLists drops every cached list page, deleting in batches of 200.
func (c *PostCacheStore) InvalidatePostLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, contract.PostListCacheKeyPrefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
