package memory

import (
	"github.com/oklog/ulid/v2"

	"github.com/sashablokhin/memoledger/internal/usecase"
)

// ULIDGenerator generates ULID-based handles. ULIDs sort lexicographically
// by creation time, which keeps snapshot listings in capture order.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

var _ usecase.IDGenerator = (*ULIDGenerator)(nil)
