package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
)

func TestBuildPostFilter_Empty(t *testing.T) {
	assert.Empty(t, buildPostFilter(&contract.PostFilterOptions{}))
}

func TestBuildPostFilter_AllFields(t *testing.T) {
	f := buildPostFilter(&contract.PostFilterOptions{
		Category: "Tech",
		AuthorID: "u1",
		Tag:      "go",
		Search:   "a.b",
	})

	assert.Equal(t, bson.M{"$regex": "^Tech$", "$options": "i"}, f["category"])
	assert.Equal(t, "u1", f["author.id"])
	assert.Equal(t, bson.M{"$regex": "^go$", "$options": "i"}, f["tags"])

	or, ok := f["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)
	assert.Equal(t, bson.M{"title": bson.M{"$regex": `a\.b`, "$options": "i"}}, or[0])
}
