package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
)

// Generator hands out time-ordered (version 7) UUIDs, so ids sort in creation order and
// can break ties between documents created within the same millisecond.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID, falling back to a random one if the clock source fails.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
