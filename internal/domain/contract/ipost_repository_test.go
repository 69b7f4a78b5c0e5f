package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFilterOptions_NormalizeClampsPage(t *testing.T) {
	f := PostFilterOptions{Page: math.MaxInt, Limit: MaxPageSize}
	f.Normalize()
	assert.Equal(t, MaxPage, f.Page)
	assert.Positive(t, f.Offset())

	f = PostFilterOptions{Page: -3, Limit: 0}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.Limit)
	assert.Zero(t, f.Offset())
}
