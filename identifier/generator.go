// Package identifier hands out keys for new messages and groups.
//
// Keys are drawn from a 63-bit uniform random space rather than from the clock:
// two creations inside the same clock tick must still get distinct keys. A draw
// that does hit an existing key is caught by the store's uniqueness constraint
// and retried by the caller with a fresh draw.
package identifier

import (
	"chat-poll/domain"
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
)

const maxPositive = 1<<63 - 1

// RandomGenerator draws identifiers from an entropy source.
// It is safe for concurrent use.
type RandomGenerator struct {
	mu     sync.Mutex
	source io.Reader
	buf    [8]byte
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{source: rand.Reader}
}

// NewRandomGeneratorFrom is used by tests that need a deterministic source.
func NewRandomGeneratorFrom(source io.Reader) *RandomGenerator {
	return &RandomGenerator{source: source}
}

func (g *RandomGenerator) NewGroupID() domain.GroupID {
	return domain.GroupID(g.draw())
}

func (g *RandomGenerator) NewMessageID() domain.MessageID {
	return domain.MessageID(g.draw())
}

// draw returns a value in [1, 2^63-1].
// Zero is redrawn since it is the "unset" value of both identifier types.
func (g *RandomGenerator) draw() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	for {
		if _, err := io.ReadFull(g.source, g.buf[:]); err != nil {
			// crypto/rand.Reader does not fail on supported platforms.
			panic("identifier: entropy source failed: " + err.Error())
		}
		n := int64(binary.BigEndian.Uint64(g.buf[:]) & maxPositive)
		if n != 0 {
			return n
		}
	}
}
