package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// UserUsecase implements profile management and the admin user listing.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	hasher    contract.IHasher
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
		validator: validator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of update.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrInvalidInput)
		}
		user.Name = name
	}
	if update.DOB != nil {
		user.DOB = strings.TrimSpace(*update.DOB)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.PhotoURL != nil {
		photo, err := validatePhotoURL(*update.PhotoURL)
		if err != nil {
			return nil, err
		}
		user.PhotoURL = photo
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// validatePhotoURL accepts an empty value (clears the avatar) or an absolute http(s) URL.
func validatePhotoURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: photoURL must be an http(s) URL", entity.ErrInvalidInput)
	}
	return raw, nil
}

// ChangePassword requires the current password before storing the new one.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("%w: account has no password set", entity.ErrInvalidInput)
	}
	if err := uc.hasher.ComparePasswordHash(currentPassword, user.PasswordHash); err != nil {
		return entity.ErrInvalidCredentials
	}
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	hashed, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	uc.logger.Infof("password changed for user %s", userID)
	return nil
}

func (uc *UserUsecase) UpdateAvatar(ctx context.Context, userID, photoURL string) (*entity.User, error) {
	return uc.UpdateProfile(ctx, userID, usecasecontract.ProfileUpdate{PhotoURL: &photoURL})
}

// ListUsers is restricted to admins.
func (uc *UserUsecase) ListUsers(ctx context.Context, requester *entity.User, page, limit int) ([]*entity.User, int64, error) {
	if requester == nil {
		return nil, 0, entity.ErrUnauthenticated
	}
	if !requester.IsAdmin() {
		return nil, 0, fmt.Errorf("listing users: %w", entity.ErrForbidden)
	}
	f := contract.PostFilterOptions{Page: page, Limit: limit}
	f.Normalize()
	return uc.userRepo.ListUsers(ctx, f.Page, f.Limit)
}
