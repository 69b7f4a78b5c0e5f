package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	ShouldFailGet    bool
	ShouldFailCreate bool
	ShouldFailLike   bool
	FailWith         error
	// ReplyLanded controls the isReply flag returned by CreateComment.
	ReplyLanded bool

	MockComments []entity.Comment
	LastParentID string
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		MockComments: []entity.Comment{{ID: "c1", Author: entity.CommentAuthor{Name: "Ada"}, Content: "first", Replies: []entity.Comment{}}},
	}
}

func (m *MockCommentUsecase) fail(msg string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(msg)
}

func (m *MockCommentUsecase) GetComments(ctx context.Context, postID string) ([]entity.Comment, error) {
	if m.ShouldFailGet {
		return nil, m.fail("get comments failed")
	}
	return m.MockComments, nil
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, author *entity.User, postID, parentID, content string) (*entity.Comment, bool, error) {
	m.LastParentID = parentID
	if m.ShouldFailCreate {
		return nil, false, m.fail("create comment failed")
	}
	return &entity.Comment{
		ID:      "new-comment",
		Author:  entity.CommentAuthor{Name: author.Name, Avatar: author.PhotoURL},
		Content: content,
		Replies: []entity.Comment{},
	}, m.ReplyLanded, nil
}

func (m *MockCommentUsecase) LikeComment(ctx context.Context, postID, commentID string) (*entity.Comment, error) {
	if m.ShouldFailLike {
		return nil, m.fail("like comment failed")
	}
	return &entity.Comment{ID: commentID, Likes: 1, Replies: []entity.Comment{}}, nil
}

// MockDashboardUsecase is a mock implementation of the IDashboardUseCase interface
type MockDashboardUsecase struct {
	ShouldFail bool
	MockStats  usecasecontract.DashboardStats
}

var _ usecasecontract.IDashboardUseCase = (*MockDashboardUsecase)(nil)

func (m *MockDashboardUsecase) GetStats(ctx context.Context, requester *entity.User) (*usecasecontract.DashboardStats, error) {
	if m.ShouldFail {
		return nil, errors.New("stats failed")
	}
	stats := m.MockStats
	return &stats, nil
}

// MockAIUsecase is a mock implementation of the IAIUseCase interface
type MockAIUsecase struct {
	Reply       string
	Err         error
	LastHistory []entity.ChatMessage
}

var _ usecasecontract.IAIUseCase = (*MockAIUsecase)(nil)

func (m *MockAIUsecase) Chat(ctx context.Context, message string, history []entity.ChatMessage) (string, error) {
	m.LastHistory = history
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
