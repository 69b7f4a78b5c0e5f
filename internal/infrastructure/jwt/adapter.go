package jwt

import (
	"fmt"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/usecase"
)

// accessTokenService exposes JWTManager through the use-case JWTService port.
type accessTokenService struct {
	mgr *JWTManager
}

var _ usecase.JWTService = (*accessTokenService)(nil)

func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &accessTokenService{mgr: mgr}
}

func (s *accessTokenService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return s.mgr.GenerateAccessToken(userID, string(role))
}

// ParseAccessToken rejects tokens whose role claim is not one the service issues.
func (s *accessTokenService) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	c, err := s.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidToken, err)
	}
	role := entity.UserRole(c.Role)
	if role != entity.UserRoleUser && role != entity.UserRoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", entity.ErrInvalidToken, c.Role)
	}
	return &entity.Claims{UserID: c.Subject, Role: role, RegisteredClaims: c.RegisteredClaims}, nil
}
