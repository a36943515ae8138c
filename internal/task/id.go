package task

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator hands out ULIDs that sort in creation order, even within
// the same millisecond.
type IDGenerator struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (g *IDGenerator) New() string {
	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		// Monotonic entropy overflowed within one millisecond.
		return fmt.Sprintf("%d", g.now().UnixNano())
	}
	return id.String()
}
