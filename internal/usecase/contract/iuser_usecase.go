package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	DOB      string
	Phone    string
}

// IAuthUseCase covers signup, login and the three-step password reset.
type IAuthUseCase interface {
	Signup(ctx context.Context, in SignupInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	VerifyEmail(ctx context.Context, email string) (*entity.User, error)
	VerifySecurity(ctx context.Context, email, dob, phone string) (verifier string, token string, err error)
	ResetPassword(ctx context.Context, verifier, token, newPassword string) error
	LoginWithOAuth(ctx context.Context, name, email, photoURL string) (*entity.User, string, error)
}

// ProfileUpdate holds optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name     *string
	DOB      *string
	Phone    *string
	PhotoURL *string
}

// IUserUseCase defines profile and user administration operations.
type IUserUseCase interface {
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpdateAvatar(ctx context.Context, userID, photoURL string) (*entity.User, error)
	ListUsers(ctx context.Context, requester *entity.User, page, limit int) ([]*entity.User, int64, error)
}
