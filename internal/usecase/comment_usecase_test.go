package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/repository/memory"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

func newCommentUC(t *testing.T) (usecasecontract.ICommentUseCase, *memory.PostRepository, *entity.Post) {
	t.Helper()
	posts := memory.NewPostRepository()
	post := &entity.Post{ID: "p1", Slug: "p1", Title: "P1"}
	require.NoError(t, posts.CreatePost(context.Background(), post))
	return NewCommentUseCase(memory.NewCommentRepository(), posts, &seqUUID{}, nopLogger{}), posts, post
}

func TestCreateComment_TopLevelAndReply(t *testing.T) {
	ctx := context.Background()
	uc, posts, post := newCommentUC(t)
	author := newUser("u1", entity.UserRoleUser)
	author.PhotoURL = "https://img.example.com/u1.png"

	top, asReply, err := uc.CreateComment(ctx, author, post.ID, "", "  First!  ")
	require.NoError(t, err)
	assert.False(t, asReply)
	assert.Equal(t, "First!", top.Content)
	assert.Equal(t, author.Name, top.Author.Name)
	assert.Equal(t, author.PhotoURL, top.Author.Avatar)

	reply, asReply, err := uc.CreateComment(ctx, author, post.ID, top.ID, "a reply")
	require.NoError(t, err)
	assert.True(t, asReply)

	_, asReply, err = uc.CreateComment(ctx, author, post.ID, reply.ID, "nested reply")
	require.NoError(t, err)
	assert.True(t, asReply)

	tree, err := uc.GetComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, "nested reply", tree[0].Replies[0].Replies[0].Content)

	stored, _ := posts.GetPostByID(ctx, post.ID)
	assert.Equal(t, 3, stored.CommentCount)
}

func TestCreateComment_MissingParentFallsBackToTopLevel(t *testing.T) {
	ctx := context.Background()
	uc, _, post := newCommentUC(t)
	author := newUser("u1", entity.UserRoleUser)

	_, asReply, err := uc.CreateComment(ctx, author, post.ID, "does-not-exist", "orphan")
	require.NoError(t, err)
	assert.False(t, asReply)

	tree, err := uc.GetComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "orphan", tree[0].Content)
}

func TestCreateComment_UnknownPostStillStored(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newCommentUC(t)

	_, _, err := uc.CreateComment(ctx, newUser("u1", entity.UserRoleUser), "ghost-post", "", "hello")
	require.NoError(t, err)

	tree, err := uc.GetComments(ctx, "ghost-post")
	require.NoError(t, err)
	assert.Len(t, tree, 1)
}

func TestCreateComment_Validation(t *testing.T) {
	ctx := context.Background()
	uc, _, post := newCommentUC(t)
	author := newUser("u1", entity.UserRoleUser)

	_, _, err := uc.CreateComment(ctx, nil, post.ID, "", "x")
	assert.True(t, errors.Is(err, entity.ErrUnauthenticated))

	_, _, err = uc.CreateComment(ctx, author, "", "", "x")
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))

	_, _, err = uc.CreateComment(ctx, author, post.ID, "", "   ")
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))

	_, _, err = uc.CreateComment(ctx, author, post.ID, "", strings.Repeat("é", MaxCommentLength+1))
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))

	_, _, err = uc.CreateComment(ctx, author, post.ID, "", strings.Repeat("é", MaxCommentLength))
	assert.NoError(t, err)
}

func TestLikeComment(t *testing.T) {
	ctx := context.Background()
	uc, _, post := newCommentUC(t)
	author := newUser("u1", entity.UserRoleUser)

	top, _, err := uc.CreateComment(ctx, author, post.ID, "", "top")
	require.NoError(t, err)
	reply, _, err := uc.CreateComment(ctx, author, post.ID, top.ID, "reply")
	require.NoError(t, err)

	liked, err := uc.LikeComment(ctx, post.ID, reply.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	_, err = uc.LikeComment(ctx, post.ID, "missing")
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	_, err = uc.LikeComment(ctx, "", reply.ID)
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))
}

func TestCreateComment_InvalidatesCachedPost(t *testing.T) {
	ctx := context.Background()
	posts := memory.NewPostRepository()
	post := &entity.Post{ID: "p1", Slug: "cached-post", Title: "Cached"}
	require.NoError(t, posts.CreatePost(ctx, post))

	cache := newMapCache()
	require.NoError(t, cache.SetPostBySlug(ctx, post.Slug, post))
	listKey := contract.PostListCacheKeyPrefix + "page=1"
	require.NoError(t, cache.SetPostsPage(ctx, listKey, &contract.CachedPostsPage{Posts: []entity.Post{*post}, Total: 1}))

	uc := NewCommentUseCase(memory.NewCommentRepository(), posts, &seqUUID{}, nopLogger{})
	uc.SetPostCache(cache)

	_, _, err := uc.CreateComment(ctx, newUser("u1", entity.UserRoleUser), post.ID, "", "hello")
	require.NoError(t, err)

	_, hit, err := cache.GetPostBySlug(ctx, post.Slug)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = cache.GetPostsPage(ctx, listKey)
	require.NoError(t, err)
	assert.False(t, hit)

	stored, err := posts.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CommentCount)
}
