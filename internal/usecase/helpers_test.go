package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	passwordservice "github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/validator"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type seqUUID struct{ n int64 }

func (g *seqUUID) NewUUID() string {
	return fmt.Sprintf("id-%d", atomic.AddInt64(&g.n, 1))
}

type seqRandom struct{ n int64 }

func (g *seqRandom) GenerateRandomToken(n int) (string, error) {
	return fmt.Sprintf("rnd-%d-%d", n, atomic.AddInt64(&g.n, 1)), nil
}

type stubConfig struct {
	resetExpiry time.Duration
}

func (c stubConfig) GetAppBaseURL() string                      { return "http://muse.test" }
func (c stubConfig) GetAccessTokenExpiry() time.Duration        { return time.Hour }
func (c stubConfig) GetPasswordResetTokenExpiry() time.Duration { return c.resetExpiry }
func (c stubConfig) GetAllowHeaderAuth() bool                   { return true }
func (c stubConfig) GetAIServiceAPIKey() string                 { return "" }
func (c stubConfig) GetAIModel() string                         { return "" }

// fakeJWT issues "token:<userID>:<role>" strings.
type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "token:" + userID + ":" + string(role), nil
}

func (fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	var id, role string
	if _, err := fmt.Sscanf(token, "token:%s", &id); err != nil {
		return nil, entity.ErrInvalidToken
	}
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == ':' {
			id, role = id[:i], id[i+1:]
			break
		}
	}
	return &entity.Claims{UserID: id, Role: entity.UserRole(role)}, nil
}

type sentMail struct {
	to, subject, body string
}

type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *captureMailer) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

type authFixture struct {
	uc     *AuthUsecase
	users  *memory.UserRepository
	tokens *memory.TokenRepository
	mailer *captureMailer
}

func newAuthFixture() *authFixture {
	users := memory.NewUserRepository()
	tokens := memory.NewTokenRepository()
	mailer := &captureMailer{}
	uc := NewAuthUsecase(users, tokens, passwordservice.NewHasherWithCost(0), fakeJWT{}, mailer,
		nopLogger{}, stubConfig{resetExpiry: 15 * time.Minute}, validator.NewValidator(), &seqUUID{}, &seqRandom{})
	return &authFixture{uc: uc, users: users, tokens: tokens, mailer: mailer}
}

func newUser(id string, role entity.UserRole) *entity.User {
	return &entity.User{ID: id, Name: "User " + id, Email: id + "@example.com", Role: role}
}
