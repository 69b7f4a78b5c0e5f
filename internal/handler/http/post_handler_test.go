package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPosts_ParsesQuery(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)

	w := doJSON(r, http.MethodGet, "/api/posts?page=2&limit=5&category=Poetry&author=u-1&tag=night&search=moon", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	f := d.posts.LastFilter
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, "Poetry", f.Category)
	assert.Equal(t, "u-1", f.AuthorID)
	assert.Equal(t, "night", f.Tag)
	assert.Equal(t, "moon", f.Search)

	var page usecasecontract.PostPage
	decode(t, w, &page)
	assert.Len(t, page.Posts, 1)
	assert.EqualValues(t, 1, page.Total)
}

func TestListPosts_BadPagingFallsBackToDefaults(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)

	w := doJSON(r, http.MethodGet, "/api/posts?page=abc&limit=-3", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, d.posts.LastFilter.Page)
	assert.Equal(t, 10, d.posts.LastFilter.Limit)
}

func TestGetPost(t *testing.T) {
	r := defaultRouter(newDeps())

	w := doJSON(r, http.MethodGet, "/api/posts/hello-world", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.PostResponse
	decode(t, w, &resp)
	assert.Equal(t, "Hello World", resp.Post.Title)

	w = doJSON(r, http.MethodGet, "/api/posts/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)
	body := dto.CreatePostRequest{Title: "Night Thoughts", Content: "<p>stars</p>", Category: "Poetry", Tags: []string{"night"}}

	w := doJSON(r, http.MethodPost, "/api/posts", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/posts", body, asUser(regularUser))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, regularUser.ID, d.posts.LastRequester.ID)
	assert.Equal(t, []string{"night"}, d.posts.LastCreate.Tags)
	var resp dto.PostResponse
	decode(t, w, &resp)
	assert.Equal(t, "Ada", resp.Post.Author.Name)
}

func TestCreatePost_Validation(t *testing.T) {
	r := defaultRouter(newDeps())

	w := doJSON(r, http.MethodPost, "/api/posts", map[string]string{"title": "x"}, asUser(regularUser))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/posts", dto.CreatePostRequest{Title: "!!!", Content: "c", Category: "c"}, asUser(regularUser))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slugsafe")
}

func TestUpdatePost(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)
	title := "Renamed"

	w := doJSON(r, http.MethodPut, "/api/posts/hello-world", dto.UpdatePostRequest{Title: &title}, asUser(regularUser))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.posts.LastUpdate.Title)
	assert.Equal(t, "Renamed", *d.posts.LastUpdate.Title)
	assert.Nil(t, d.posts.LastUpdate.Content)
}

func TestUpdatePost_ForbiddenForNonAuthor(t *testing.T) {
	d := newDeps()
	d.posts.ShouldFailUpdate = true
	d.posts.FailWith = fmt.Errorf("only the author may edit: %w", entity.ErrForbidden)
	r := defaultRouter(d)
	title := "Hijack"

	w := doJSON(r, http.MethodPut, "/api/posts/hello-world", dto.UpdatePostRequest{Title: &title}, asUser(regularUser))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "forbidden", resp.Error)
	assert.Contains(t, resp.Details, "only the author")
}

func TestDeletePost(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)

	w := doJSON(r, http.MethodDelete, "/api/posts/hello-world", nil, asUser(adminUser))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminUser.ID, d.posts.LastRequester.ID)
}

func TestDeletePost_InternalErrorIsNotLeaked(t *testing.T) {
	d := newDeps()
	d.posts.ShouldFailDelete = true
	d.posts.FailWith = fmt.Errorf("mongo: connection reset by peer")
	r := defaultRouter(d)

	w := doJSON(r, http.MethodDelete, "/api/posts/hello-world", nil, asUser(regularUser))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "mongo")
}
