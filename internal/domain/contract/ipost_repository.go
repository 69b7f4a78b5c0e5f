package contract

import (
	"context"
	"math"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// IPostRepository provides methods for managing posts in the backing store.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	// GetPostBySlug returns the first post stored under the slug. Slugs may collide.
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	ListPosts(ctx context.Context, filter *PostFilterOptions) ([]*entity.Post, int64, error)
	UpdatePost(ctx context.Context, post *entity.Post) error
	DeletePost(ctx context.Context, postID string) error
	IncrementViews(ctx context.Context, postID string) error
	IncrementCommentCount(ctx context.Context, postID string) error
	GetPostStats(ctx context.Context, topN int) (*entity.PostStats, error)
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps (Page-1)*Limit inside int for any valid Limit.
	MaxPage = math.MaxInt / MaxPageSize
)

// PostFilterOptions encapsulates filtering and pagination for post listing.
type PostFilterOptions struct {
	Page     int
	Limit    int
	Category string
	AuthorID string
	Tag      string
	Search   string
}

// Normalize clamps page and limit into their valid ranges.
func (o *PostFilterOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Page > MaxPage {
		o.Page = MaxPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
}

// Offset is the number of matching items skipped before the requested page.
func (o *PostFilterOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}
