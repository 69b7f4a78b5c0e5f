package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const MaxCommentLength = 1000

// CommentUseCase manages the per-post comment trees.
type CommentUseCase struct {
	commentRepo contract.ICommentRepository
	postRepo    contract.IPostRepository
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	postCache   contract.IPostCache
}

var _ usecasecontract.ICommentUseCase = (*CommentUseCase)(nil)

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	postRepo contract.IPostRepository,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

// SetPostCache lets a comment drop the cached copies of its post, whose commentCount changed.
func (uc *CommentUseCase) SetPostCache(cache contract.IPostCache) {
	uc.postCache = cache
}

func (uc *CommentUseCase) GetComments(ctx context.Context, postID string) ([]entity.Comment, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("%w: postId is required", entity.ErrInvalidInput)
	}
	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		uc.logger.Errorf("failed to list comments for %s: %v", postID, err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CreateComment adds a comment, as a reply when parentID names an existing comment of the
// post and at top level otherwise. The flag reports which one happened.
func (uc *CommentUseCase) CreateComment(ctx context.Context, author *entity.User, postID, parentID, content string) (*entity.Comment, bool, error) {
	if author == nil {
		return nil, false, entity.ErrUnauthenticated
	}
	if strings.TrimSpace(postID) == "" {
		return nil, false, fmt.Errorf("%w: postId is required", entity.ErrInvalidInput)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false, fmt.Errorf("%w: comment cannot be empty", entity.ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return nil, false, fmt.Errorf("%w: comment exceeds %d characters", entity.ErrInvalidInput, MaxCommentLength)
	}

	comment := entity.Comment{
		ID:        uc.uuidgen.NewUUID(),
		Author:    entity.CommentAuthor{Name: author.Name, Avatar: author.PhotoURL},
		Timestamp: time.Now().UTC(),
		Content:   content,
		Replies:   []entity.Comment{},
	}
	asReply, err := uc.commentRepo.AddComment(ctx, postID, strings.TrimSpace(parentID), comment)
	if err != nil {
		uc.logger.Errorf("failed to add comment to %s: %v", postID, err)
		return nil, false, fmt.Errorf("failed to add comment: %w", err)
	}
	if parentID != "" && !asReply {
		uc.logger.Debugf("parent comment %s not found on post %s, stored at top level", parentID, postID)
	}

	if err := uc.postRepo.IncrementCommentCount(ctx, postID); err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Warnf("failed to bump comment count for post %s: %v", postID, err)
		}
	} else {
		uc.invalidateCachedPost(ctx, postID)
	}
	return &comment, asReply, nil
}

func (uc *CommentUseCase) LikeComment(ctx context.Context, postID, commentID string) (*entity.Comment, error) {
	if postID == "" || commentID == "" {
		return nil, fmt.Errorf("%w: postId and commentId are required", entity.ErrInvalidInput)
	}
	return uc.commentRepo.LikeComment(ctx, postID, commentID)
}

func (uc *CommentUseCase) invalidateCachedPost(ctx context.Context, postID string) {
	if uc.postCache == nil {
		return
	}
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		uc.logger.Warningf("cache invalidate skipped: post %s lookup failed: %v", postID, err)
	} else if err := uc.postCache.InvalidatePostBySlug(ctx, post.Slug); err != nil {
		uc.logger.Warningf("cache invalidate failed: post detail slug=%s err=%v", post.Slug, err)
	}
	if err := uc.postCache.InvalidatePostLists(ctx); err != nil {
		uc.logger.Warningf("cache invalidate failed: post lists err=%v", err)
	}
}
