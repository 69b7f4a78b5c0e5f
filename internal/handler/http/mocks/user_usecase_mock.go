package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface. Users are looked
// up in Users by id.
type MockUserUsecase struct {
	ShouldFailUpdateProfile  bool
	ShouldFailChangePassword bool
	ShouldFailUpdateAvatar   bool
	ShouldFailListUsers      bool
	FailWith                 error

	Users map[string]*entity.User

	LastUpdate          usecasecontract.ProfileUpdate
	LastCurrentPassword string
	LastNewPassword     string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase(users ...*entity.User) *MockUserUsecase {
	m := &MockUserUsecase{Users: make(map[string]*entity.User)}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

func (m *MockUserUsecase) fail(msg string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(msg)
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	u, ok := m.Users[userID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	m.LastUpdate = update
	if m.ShouldFailUpdateProfile {
		return nil, m.fail("update profile failed")
	}
	u, err := m.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.DOB != nil {
		u.DOB = *update.DOB
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.PhotoURL != nil {
		u.PhotoURL = *update.PhotoURL
	}
	return u, nil
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	m.LastCurrentPassword = currentPassword
	m.LastNewPassword = newPassword
	if m.ShouldFailChangePassword {
		return m.fail("change password failed")
	}
	return nil
}

func (m *MockUserUsecase) UpdateAvatar(ctx context.Context, userID, photoURL string) (*entity.User, error) {
	if m.ShouldFailUpdateAvatar {
		return nil, m.fail("update avatar failed")
	}
	return m.UpdateProfile(ctx, userID, usecasecontract.ProfileUpdate{PhotoURL: &photoURL})
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, requester *entity.User, page, limit int) ([]*entity.User, int64, error) {
	if m.ShouldFailListUsers {
		return nil, 0, m.fail("list users failed")
	}
	if !requester.IsAdmin() {
		return nil, 0, entity.ErrForbidden
	}
	out := make([]*entity.User, 0, len(m.Users))
	for _, u := range m.Users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}
