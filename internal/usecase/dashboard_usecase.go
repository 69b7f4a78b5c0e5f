package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const dashboardTopPosts = 5

type DashboardUseCase struct {
	userRepo    contract.IUserRepository
	postRepo    contract.IPostRepository
	commentRepo contract.ICommentRepository
}

var _ usecasecontract.IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(userRepo contract.IUserRepository, postRepo contract.IPostRepository, commentRepo contract.ICommentRepository) *DashboardUseCase {
	return &DashboardUseCase{userRepo: userRepo, postRepo: postRepo, commentRepo: commentRepo}
}

// GetStats aggregates site totals for admins.
func (uc *DashboardUseCase) GetStats(ctx context.Context, requester *entity.User) (*usecasecontract.DashboardStats, error) {
	if requester == nil {
		return nil, entity.ErrUnauthenticated
	}
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("dashboard: %w", entity.ErrForbidden)
	}

	users, err := uc.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	comments, err := uc.commentRepo.CountComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	posts, err := uc.postRepo.GetPostStats(ctx, dashboardTopPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate posts: %w", err)
	}
	return &usecasecontract.DashboardStats{Users: users, Comments: comments, Posts: posts}, nil
}
