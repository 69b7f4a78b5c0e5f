package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
)

func TestPostDetailKey(t *testing.T) {
	assert.Equal(t, "post:slug:hello-world", postDetailKey("hello-world"))
	// detail keys must survive list invalidation
	assert.False(t, strings.HasPrefix(postDetailKey("x"), contract.PostListCacheKeyPrefix))
}

func TestNewPostCacheStore_TTLs(t *testing.T) {
	c := NewPostCacheStore(nil)
	assert.Greater(t, c.detailTTL, c.listTTL)
}
