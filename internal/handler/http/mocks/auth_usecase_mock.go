package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailSignup         bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailVerifyEmail    bool
	ShouldFailVerifySecurity bool
	ShouldFailResetPassword  bool
	ShouldFailLoginWithOAuth bool
	// FailWith replaces the generic error returned by a failing call.
	FailWith error

	// Return values
	MockUser        entity.User
	MockAccessToken string
	MockVerifier    string
	MockResetToken  string

	LastSignup usecasecontract.SignupInput
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Name:     "Test User",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
		MockVerifier:    "mock_verifier",
		MockResetToken:  "mock_reset_token",
	}
}

func (m *MockAuthUsecase) fail(msg string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(msg)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, in usecasecontract.SignupInput) (*entity.User, string, error) {
	m.LastSignup = in
	if m.ShouldFailSignup {
		return nil, "", m.fail("signup failed")
	}
	user := m.MockUser
	user.Name = in.Name
	user.Email = in.Email
	return &user, m.MockAccessToken, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", m.fail("login failed")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

// Authenticate accepts only MockAccessToken.
func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return nil, entity.ErrInvalidToken
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) VerifyEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.ShouldFailVerifyEmail {
		return nil, m.fail("verify email failed")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) VerifySecurity(ctx context.Context, email, dob, phone string) (string, string, error) {
	if m.ShouldFailVerifySecurity {
		return "", "", m.fail("verify security failed")
	}
	return m.MockVerifier, m.MockResetToken, nil
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, verifier, token, newPassword string) error {
	if m.ShouldFailResetPassword {
		return m.fail("reset password failed")
	}
	return nil
}

func (m *MockAuthUsecase) LoginWithOAuth(ctx context.Context, name, email, photoURL string) (*entity.User, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return nil, "", m.fail("oauth login failed")
	}
	user := m.MockUser
	user.Name = name
	user.Email = email
	user.PhotoURL = photoURL
	return &user, m.MockAccessToken, nil
}
