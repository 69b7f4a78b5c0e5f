package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]entity.Token
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[string]entity.Token)}
}

func (r *TokenRepository) CreateToken(_ context.Context, token *entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token.ID]; exists {
		return fmt.Errorf("token %s already exists", token.ID)
	}
	r.tokens[token.ID] = *token
	return nil
}

func (r *TokenRepository) GetTokenByVerifier(_ context.Context, verifier string) (*entity.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tokens {
		if t.Verifier == verifier {
			token := t
			return &token, nil
		}
	}
	return nil, fmt.Errorf("token: %w", entity.ErrNotFound)
}

func (r *TokenRepository) RevokeToken(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return fmt.Errorf("token %s: %w", id, entity.ErrNotFound)
	}
	t.Revoke = true
	r.tokens[id] = t
	return nil
}

func (r *TokenRepository) RevokeAllTokensForUser(_ context.Context, userID string, tokenType entity.TokenType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.tokens {
		if t.UserID == userID && t.TokenType == tokenType {
			t.Revoke = true
			r.tokens[id] = t
		}
	}
	return nil
}
