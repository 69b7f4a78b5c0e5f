package contract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// ICommentRepository stores comment trees keyed by post id.
type ICommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]entity.Comment, error)
	// AddComment inserts the comment under parentID when that id exists anywhere in the
	// post's tree, otherwise at top level. The returned flag reports whether it became a reply.
	AddComment(ctx context.Context, postID, parentID string, comment entity.Comment) (bool, error)
	LikeComment(ctx context.Context, postID, commentID string) (*entity.Comment, error)
	CountComments(ctx context.Context) (int64, error)
}
