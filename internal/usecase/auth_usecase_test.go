package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

func signupAda(t *testing.T, f *authFixture) *entity.User {
	t.Helper()
	user, token, err := f.uc.Signup(context.Background(), usecasecontract.SignupInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "Secret#123",
		DOB:      "1990-12-10",
		Phone:    "+1 (555) 010-2030",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func TestSignup(t *testing.T) {
	f := newAuthFixture()
	user := signupAda(t, f)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.NotEqual(t, "Secret#123", user.PasswordHash)
	assert.False(t, user.JoinedAt.IsZero())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	signupAda(t, f)

	_, _, err := f.uc.Signup(context.Background(), usecasecontract.SignupInput{
		Name: "Other", Email: "ADA@example.com", Password: "Secret#123",
	})
	assert.True(t, errors.Is(err, entity.ErrEmailTaken))
}

func TestSignup_Validation(t *testing.T) {
	f := newAuthFixture()
	cases := []usecasecontract.SignupInput{
		{Name: "", Email: "a@example.com", Password: "Secret#123"},
		{Name: "A", Email: "nope", Password: "Secret#123"},
		{Name: "A", Email: "a@example.com", Password: "weak"},
	}
	for _, in := range cases {
		_, _, err := f.uc.Signup(context.Background(), in)
		assert.True(t, errors.Is(err, entity.ErrInvalidInput), "%+v", in)
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	created := signupAda(t, f)

	user, token, err := f.uc.Login(context.Background(), "ada@example.com", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	authed, err := f.uc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)

	_, _, err = f.uc.Login(context.Background(), "ada@example.com", "Wrong#123")
	assert.True(t, errors.Is(err, entity.ErrInvalidCredentials))

	_, _, err = f.uc.Login(context.Background(), "ghost@example.com", "Secret#123")
	assert.True(t, errors.Is(err, entity.ErrInvalidCredentials))
}

func TestAuthenticate_BadToken(t *testing.T) {
	f := newAuthFixture()
	_, err := f.uc.Authenticate(context.Background(), "garbage")
	assert.True(t, errors.Is(err, entity.ErrUnauthenticated))

	_, err = f.uc.Authenticate(context.Background(), "token:ghost:user")
	assert.True(t, errors.Is(err, entity.ErrUnauthenticated))
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	created := signupAda(t, f)

	user, err := f.uc.VerifyEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = f.uc.VerifyEmail(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	_, _, err = f.uc.VerifySecurity(ctx, "ada@example.com", "1990-12-10", "555-999")
	assert.True(t, errors.Is(err, entity.ErrInvalidCredentials))

	verifier, token, err := f.uc.VerifySecurity(ctx, "ada@example.com", "1990-12-10", "15550102030")
	require.NoError(t, err)

	err = f.uc.ResetPassword(ctx, verifier, "wrong-token", "NewSecret#1")
	assert.True(t, errors.Is(err, entity.ErrInvalidToken))

	require.NoError(t, f.uc.ResetPassword(ctx, verifier, token, "NewSecret#1"))

	_, _, err = f.uc.Login(ctx, "ada@example.com", "NewSecret#1")
	assert.NoError(t, err)

	// the token is single use
	err = f.uc.ResetPassword(ctx, verifier, token, "Another#123")
	assert.True(t, errors.Is(err, entity.ErrInvalidToken))

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "ada@example.com", f.mailer.sent[0].to)
}

func TestVerifySecurity_RevokesEarlierTokens(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	signupAda(t, f)

	v1, t1, err := f.uc.VerifySecurity(ctx, "ada@example.com", "1990-12-10", "15550102030")
	require.NoError(t, err)
	_, _, err = f.uc.VerifySecurity(ctx, "ada@example.com", "1990-12-10", "15550102030")
	require.NoError(t, err)

	err = f.uc.ResetPassword(ctx, v1, t1, "NewSecret#1")
	assert.True(t, errors.Is(err, entity.ErrInvalidToken))
}

func TestResetPassword_Expired(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	user := signupAda(t, f)

	hash, err := f.uc.hasher.HashPassword("tok")
	require.NoError(t, err)
	require.NoError(t, f.tokens.CreateToken(ctx, &entity.Token{
		ID:        "t1",
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: hash,
		Verifier:  "ver",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	err = f.uc.ResetPassword(ctx, "ver", "tok", "NewSecret#1")
	assert.True(t, errors.Is(err, entity.ErrInvalidToken))
}

func TestResetPassword_MailFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	signupAda(t, f)
	f.mailer.err = errors.New("smtp down")

	verifier, token, err := f.uc.VerifySecurity(ctx, "ada@example.com", "1990-12-10", "15550102030")
	require.NoError(t, err)
	assert.NoError(t, f.uc.ResetPassword(ctx, verifier, token, "NewSecret#1"))
}

func TestLoginWithOAuth(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	user, token, err := f.uc.LoginWithOAuth(ctx, "", "grace@example.com", "https://img.example.com/g.png")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "grace", user.Name)
	assert.Empty(t, user.PasswordHash)

	again, _, err := f.uc.LoginWithOAuth(ctx, "Grace", "grace@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	// password login is refused for OAuth-only accounts
	_, _, err = f.uc.Login(ctx, "grace@example.com", "")
	assert.True(t, errors.Is(err, entity.ErrInvalidCredentials))
}
