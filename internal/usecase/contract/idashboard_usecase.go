package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// DashboardStats is the admin overview.
type DashboardStats struct {
	Users    int64             `json:"users"`
	Comments int64             `json:"comments"`
	Posts    *entity.PostStats `json:"posts"`
}

type IDashboardUseCase interface {
	GetStats(ctx context.Context, requester *entity.User) (*DashboardStats, error)
}
