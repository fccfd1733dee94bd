package board

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out card ids. Board.Create rejects ids that are already
// in use, so a generator only has to be collision-resistant, not perfect.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewUUID returns the default generator, random v4 UUIDs.
func NewUUID() IDGenerator {
	return uuidGenerator{}
}

// Counter yields prefix1, prefix2, ... and is meant for tests and seeded boards
// where predictable ids matter.
type Counter struct {
	prefix string
	next   int
}

func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

func (c *Counter) NewID() string {
	c.next++
	return c.prefix + strconv.Itoa(c.next)
}
