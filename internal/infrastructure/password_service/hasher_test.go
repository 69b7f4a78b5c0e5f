package passwordservice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

func TestHasher(t *testing.T) {
	h := NewHasherWithCost(0)

	hash, err := h.HashPassword("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.NoError(t, h.ComparePasswordHash("Secret#123", hash))

	err = h.ComparePasswordHash("wrong", hash)
	assert.True(t, errors.Is(err, entity.ErrInvalidCredentials))

	err = h.ComparePasswordHash("x", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, entity.ErrInvalidCredentials))
}
