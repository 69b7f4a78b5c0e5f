package passwordservice

import (
	"errors"
	"fmt"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	cost int
}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewHasherWithCost is used by tests to keep bcrypt fast.
func NewHasherWithCost(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// ComparePasswordHash returns entity.ErrInvalidCredentials on mismatch.
func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entity.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}
