package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
)

// RandomGenerator produces URL-safe secrets for reset tokens and verifiers.
type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

// GenerateRandomToken returns n random bytes encoded as unpadded base64url.
func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
