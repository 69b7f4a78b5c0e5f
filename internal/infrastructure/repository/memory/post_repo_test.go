package memory

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(id, slug, category string, published time.Time) *entity.Post {
	return &entity.Post{
		ID:          id,
		Slug:        slug,
		Title:       slug,
		Content:     "<p>content of " + slug + "</p>",
		Category:    category,
		Author:      entity.AuthorSnapshot{ID: "author-1", Name: "Ada"},
		PublishedAt: published,
		UpdatedAt:   published,
	}
}

func seedPosts(t *testing.T, repo *PostRepository, n int) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		cat := "tech"
		if i%2 == 1 {
			cat = "life"
		}
		p := newPost(fmt.Sprintf("p%d", i), fmt.Sprintf("post-%d", i), cat, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.CreatePost(context.Background(), p))
	}
}

func TestPostRepository_GetBySlugCollisionReturnsFirst(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.CreatePost(ctx, newPost("a", "same-title", "tech", now)))
	require.NoError(t, repo.CreatePost(ctx, newPost("b", "same-title", "tech", now.Add(time.Minute))))

	got, err := repo.GetPostBySlug(ctx, "same-title")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	all, total, err := repo.ListPosts(ctx, &contract.PostFilterOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestPostRepository_GetBySlugNotFound(t *testing.T) {
	repo := NewPostRepository()
	_, err := repo.GetPostBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPostRepository_ListPagination(t *testing.T) {
	repo := NewPostRepository()
	seedPosts(t, repo, 5)
	ctx := context.Background()

	page1, total, err := repo.ListPosts(ctx, &contract.PostFilterOptions{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)
	// newest first
	assert.Equal(t, "p4", page1[0].ID)
	assert.Equal(t, "p3", page1[1].ID)

	page3, _, err := repo.ListPosts(ctx, &contract.PostFilterOptions{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "p0", page3[0].ID)
}

func TestPostRepository_ListPageOverrun(t *testing.T) {
	repo := NewPostRepository()
	seedPosts(t, repo, 3)

	posts, total, err := repo.ListPosts(context.Background(), &contract.PostFilterOptions{Page: 10, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.EqualValues(t, 3, total)
}

func TestPostRepository_ListFilters(t *testing.T) {
	repo := NewPostRepository()
	seedPosts(t, repo, 4)
	ctx := context.Background()

	posts, total, err := repo.ListPosts(ctx, &contract.PostFilterOptions{Category: "LIFE"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range posts {
		assert.Equal(t, "life", p.Category)
	}

	tagged := newPost("tagged", "tagged", "tech", time.Now())
	tagged.Tags = []string{"Go", "cms"}
	tagged.Author.ID = "author-2"
	require.NoError(t, repo.CreatePost(ctx, tagged))

	posts, _, err = repo.ListPosts(ctx, &contract.PostFilterOptions{Tag: "go"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "tagged", posts[0].ID)

	posts, _, err = repo.ListPosts(ctx, &contract.PostFilterOptions{AuthorID: "author-2"})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	posts, _, err = repo.ListPosts(ctx, &contract.PostFilterOptions{Search: "CONTENT OF POST-2"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].ID)
}

func TestPostRepository_UpdateKeepsCounters(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	p := newPost("x", "x", "tech", time.Now())
	require.NoError(t, repo.CreatePost(ctx, p))
	require.NoError(t, repo.IncrementViews(ctx, "x"))
	require.NoError(t, repo.IncrementCommentCount(ctx, "x"))

	p.Title = "changed"
	p.Views = 0
	require.NoError(t, repo.UpdatePost(ctx, p))

	got, err := repo.GetPostByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, 1, got.Views)
	assert.Equal(t, 1, got.CommentCount)
}

func TestPostRepository_ReturnsCopies(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	p := newPost("x", "x", "tech", time.Now())
	p.Tags = []string{"a"}
	require.NoError(t, repo.CreatePost(ctx, p))

	got, err := repo.GetPostByID(ctx, "x")
	require.NoError(t, err)
	got.Tags[0] = "mutated"
	got.Title = "mutated"

	again, err := repo.GetPostByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Tags[0])
	assert.Equal(t, "x", again.Title)
}

func TestPostRepository_DeleteAndStats(t *testing.T) {
	repo := NewPostRepository()
	seedPosts(t, repo, 3)
	ctx := context.Background()
	require.NoError(t, repo.IncrementViews(ctx, "p1"))
	require.NoError(t, repo.IncrementViews(ctx, "p1"))
	require.NoError(t, repo.IncrementViews(ctx, "p2"))

	require.NoError(t, repo.DeletePost(ctx, "p0"))
	assert.ErrorIs(t, repo.DeletePost(ctx, "p0"), entity.ErrNotFound)

	stats, err := repo.GetPostStats(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalPosts)
	assert.EqualValues(t, 3, stats.TotalViews)
	assert.EqualValues(t, 1, stats.ByCategory["life"])
	assert.EqualValues(t, 1, stats.ByCategory["tech"])
	require.Len(t, stats.MostViewed, 1)
	assert.Equal(t, "p1", stats.MostViewed[0].ID)
}

func TestPostRepository_ListHugePageIsEmpty(t *testing.T) {
	repo := NewPostRepository()
	seedPosts(t, repo, 1)

	var (
		posts []*entity.Post
		total int64
		err   error
	)
	assert.NotPanics(t, func() {
		posts, total, err = repo.ListPosts(context.Background(), &contract.PostFilterOptions{Page: math.MaxInt, Limit: 10})
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.EqualValues(t, 1, total)
}
