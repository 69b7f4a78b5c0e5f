package contract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// PostListCacheKeyPrefix prefixes every cached list page so they can be invalidated together.
const PostListCacheKeyPrefix = "posts:list:"

// CachedPostsPage is the cached payload for list endpoints.
type CachedPostsPage struct {
	Posts []entity.Post `json:"posts"`
	Total int64         `json:"total"`
}

// IPostCache defines caching operations for posts.
type IPostCache interface {
	// Detail (by slug)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, bool, error)
	SetPostBySlug(ctx context.Context, slug string, post *entity.Post) error
	InvalidatePostBySlug(ctx context.Context, slug string) error

	// List pages (key built by usecase)
	GetPostsPage(ctx context.Context, key string) (*CachedPostsPage, bool, error)
	SetPostsPage(ctx context.Context, key string, page *CachedPostsPage) error
	InvalidatePostLists(ctx context.Context) error
}
