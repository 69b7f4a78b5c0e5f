package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// CommentRepository holds comment trees per post id. It is transient and independent of
// the post store: comments for an unknown post id are accepted.
type CommentRepository struct {
	mu     sync.RWMutex
	byPost map[string][]entity.Comment
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{byPost: make(map[string][]entity.Comment)}
}

func (r *CommentRepository) ListByPost(_ context.Context, postID string) ([]entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byPost[postID]
	result := make([]entity.Comment, len(stored))
	for i, c := range stored {
		result[i] = c.Clone()
	}
	return result, nil
}

func (r *CommentRepository) AddComment(_ context.Context, postID, parentID string, comment entity.Comment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment = comment.Clone()
	tree := r.byPost[postID]
	if parentID != "" && entity.InsertReply(tree, parentID, comment) {
		return true, nil
	}
	r.byPost[postID] = append(tree, comment)
	return false, nil
}

func (r *CommentRepository) LikeComment(_ context.Context, postID, commentID string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := entity.FindComment(r.byPost[postID], commentID)
	if c == nil {
		return nil, fmt.Errorf("comment %s: %w", commentID, entity.ErrNotFound)
	}
	c.Likes++
	liked := c.Clone()
	return &liked, nil
}

func (r *CommentRepository) CountComments(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, tree := range r.byPost {
		n += int64(entity.CountComments(tree))
	}
	return n, nil
}
