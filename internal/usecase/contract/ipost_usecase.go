package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Excerpt  string
	Tags     []string
}

// UpdatePostInput holds optional fields; nil means unchanged.
type UpdatePostInput struct {
	Title    *string
	Content  *string
	Category *string
	Excerpt  *string
	Tags     []string
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts      []entity.Post `json:"posts"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

type IPostUseCase interface {
	CreatePost(ctx context.Context, author *entity.User, in CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, slug string) (*entity.Post, error)
	ListPosts(ctx context.Context, filter contract.PostFilterOptions) (*PostPage, error)
	UpdatePost(ctx context.Context, slug string, requester *entity.User, in UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, slug string, requester *entity.User) error
}
