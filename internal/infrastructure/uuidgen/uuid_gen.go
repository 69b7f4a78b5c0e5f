package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
)

// Generator issues random (v4) UUID strings for entity ids.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
