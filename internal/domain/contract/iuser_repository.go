package contract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser stores a new user. Fails with entity.ErrEmailTaken if the email is in use.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
