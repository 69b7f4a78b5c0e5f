package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const (
	resetTokenBytes    = 32
	resetVerifierBytes = 16
)

// AuthUsecase implements signup, login, token authentication and password reset.
type AuthUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Signup registers a new user and returns it with an access token.
func (uc *AuthUsecase) Signup(ctx context.Context, in usecasecontract.SignupInput) (*entity.User, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}
	if err := uc.validator.ValidateEmail(in.Email); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	if err := uc.validator.ValidatePasswordStrength(in.Password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%s: %w", in.Email, entity.ErrEmailTaken)
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		DOB:          strings.TrimSpace(in.DOB),
		Phone:        strings.TrimSpace(in.Phone),
		JoinedAt:     now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, entity.ErrEmailTaken) {
			uc.logger.Errorf("failed to create user: %v", err)
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	uc.logger.Infof("user registered: id=%s", user.ID)
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh access token.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to load user for login: %v", err)
		return nil, "", fmt.Errorf("failed to login: %w", err)
	}
	// accounts created through OAuth have no password
	if user.PasswordHash == "" {
		return nil, "", entity.ErrInvalidCredentials
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		if !errors.Is(err, entity.ErrInvalidCredentials) {
			uc.logger.Errorf("failed to compare password hash: %v", err)
		}
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user.
func (uc *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUnauthenticated, err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", entity.ErrUnauthenticated)
		}
		return nil, err
	}
	return user, nil
}

// VerifyEmail is the first reset step: it only confirms an account exists.
func (uc *AuthUsecase) VerifyEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// VerifySecurity is the second reset step. DOB and phone must both match what the user
// registered with; on success a one-time reset token is issued.
func (uc *AuthUsecase) VerifySecurity(ctx context.Context, email, dob, phone string) (string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user.DOB == "" || user.Phone == "" {
		return "", "", fmt.Errorf("%w: no security details on file", entity.ErrInvalidCredentials)
	}
	if strings.TrimSpace(dob) != user.DOB || normalizePhone(phone) != normalizePhone(user.Phone) {
		uc.logger.Warnf("security answers mismatch for user %s", user.ID)
		return "", "", entity.ErrInvalidCredentials
	}

	if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, user.ID, entity.TokenTypePasswordReset); err != nil {
		uc.logger.Warnf("failed to revoke previous reset tokens for %s: %v", user.ID, err)
	}

	resetToken, err := uc.randomGenerator.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to create password reset token: %w", err)
	}
	verifier, err := uc.randomGenerator.GenerateRandomToken(resetVerifierBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate verifier: %w", err)
	}
	hashedToken, err := uc.hasher.HashPassword(resetToken)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash reset token: %w", err)
	}

	now := time.Now()
	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: hashedToken,
		Verifier:  verifier,
		ExpiresAt: now.Add(uc.config.GetPasswordResetTokenExpiry()),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store password reset token for user %s: %v", user.ID, err)
		return "", "", fmt.Errorf("failed to initiate password reset: %w", err)
	}
	return verifier, resetToken, nil
}

func normalizePhone(p string) string {
	var b strings.Builder
	for _, r := range p {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResetPassword is the final reset step.
func (uc *AuthUsecase) ResetPassword(ctx context.Context, verifier, resetToken, newPassword string) error {
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	token, err := uc.tokenRepo.GetTokenByVerifier(ctx, verifier)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrInvalidToken
		}
		return fmt.Errorf("failed to load reset token: %w", err)
	}
	if token.TokenType != entity.TokenTypePasswordReset || token.Revoke || time.Now().After(token.ExpiresAt) {
		return entity.ErrInvalidToken
	}
	if err := uc.hasher.ComparePasswordHash(resetToken, token.TokenHash); err != nil {
		return entity.ErrInvalidToken
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, token.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", token.UserID, err)
	}
	if err := uc.tokenRepo.RevokeToken(ctx, token.ID); err != nil {
		uc.logger.Errorf("failed to revoke reset token %s: %v", token.ID, err)
	}

	uc.notifyPasswordChanged(ctx, token.UserID)
	return nil
}

func (uc *AuthUsecase) notifyPasswordChanged(ctx context.Context, userID string) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		uc.logger.Warnf("password changed but user %s could not be loaded for notification: %v", userID, err)
		return
	}
	body := fmt.Sprintf("Hi %s,\n\nThe password for your Midnight Muse account was just changed. "+
		"If this wasn't you, reset it again at %s/forgot-password.\n\nThe Midnight Muse", user.Name, uc.config.GetAppBaseURL())
	if err := uc.mailService.SendEmail(ctx, user.Email, "Your password was changed", body); err != nil {
		uc.logger.Warnf("failed to send password change notice to %s: %v", user.Email, err)
	}
}

// LoginWithOAuth fetches the user by email, creating a password-less account on first login.
func (uc *AuthUsecase) LoginWithOAuth(ctx context.Context, name, email, photoURL string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", fmt.Errorf("failed to login: %w", err)
	}

	if user == nil {
		if strings.TrimSpace(name) == "" {
			name = strings.Split(email, "@")[0]
		}
		now := time.Now()
		user = &entity.User{
			ID:        uc.uuidGenerator.NewUUID(),
			Email:     strings.ToLower(strings.TrimSpace(email)),
			Name:      name,
			Role:      entity.DefaultRole(),
			PhotoURL:  photoURL,
			JoinedAt:  now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return nil, "", fmt.Errorf("failed to register user: %w", err)
		}
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for OAuth user: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
