package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the IPostUseCase interface
type MockPostUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	FailWith         error

	MockPost entity.Post

	LastFilter    contract.PostFilterOptions
	LastCreate    usecasecontract.CreatePostInput
	LastUpdate    usecasecontract.UpdatePostInput
	LastRequester *entity.User
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:       "mock-post-id",
			Slug:     "hello-world",
			Title:    "Hello World",
			Content:  "<p>hi</p>",
			Category: "General",
			Author:   entity.AuthorSnapshot{ID: "mock-user-id", Name: "Test User"},
			Tags:     []string{},
		},
	}
}

func (m *MockPostUsecase) fail(msg string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(msg)
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, author *entity.User, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	m.LastCreate = in
	m.LastRequester = author
	if m.ShouldFailCreate {
		return nil, m.fail("create post failed")
	}
	p := m.MockPost
	p.Title = in.Title
	p.Author = author.Snapshot()
	return &p, nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, slug string) (*entity.Post, error) {
	if m.ShouldFailGet {
		return nil, m.fail("get post failed")
	}
	if slug != m.MockPost.Slug {
		return nil, entity.ErrNotFound
	}
	p := m.MockPost
	return &p, nil
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, filter contract.PostFilterOptions) (*usecasecontract.PostPage, error) {
	m.LastFilter = filter
	if m.ShouldFailList {
		return nil, m.fail("list posts failed")
	}
	return &usecasecontract.PostPage{
		Posts:      []entity.Post{m.MockPost},
		Total:      1,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: 1,
	}, nil
}

func (m *MockPostUsecase) UpdatePost(ctx context.Context, slug string, requester *entity.User, in usecasecontract.UpdatePostInput) (*entity.Post, error) {
	m.LastUpdate = in
	m.LastRequester = requester
	if m.ShouldFailUpdate {
		return nil, m.fail("update post failed")
	}
	p := m.MockPost
	if in.Title != nil {
		p.Title = *in.Title
	}
	return &p, nil
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, slug string, requester *entity.User) error {
	m.LastRequester = requester
	if m.ShouldFailDelete {
		return m.fail("delete post failed")
	}
	return nil
}
