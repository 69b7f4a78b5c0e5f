package contract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error)
	RevokeToken(ctx context.Context, id string) error
	RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error
}
