package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

type ICommentUseCase interface {
	GetComments(ctx context.Context, postID string) ([]entity.Comment, error)
	CreateComment(ctx context.Context, author *entity.User, postID, parentID, content string) (*entity.Comment, bool, error)
	LikeComment(ctx context.Context, postID, commentID string) (*entity.Comment, error)
}
