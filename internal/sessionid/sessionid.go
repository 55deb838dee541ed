// Package sessionid generates time-sortable identifiers for play and
// simulation sessions, used to correlate log lines and reports.
package sessionid

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/randutil"
)

// Crockford's base32
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const (
	timeChars = 10 // 48-bit millisecond timestamp, top two bits zero
	randChars = 7  // 35 random bits
	// Length is the number of characters in an ID
	Length = timeChars + randChars
)

// Generator produces session IDs
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// NewGenerator creates a generator reading time from clock and randomness
// from rng
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	return &Generator{clock: clock, rng: rng}
}

// New returns an ID from the wall clock and OS entropy
func New() string {
	return NewGenerator(quartz.NewReal(), randutil.NewEntropy()).Generate()
}

// Generate returns the next ID. IDs from later milliseconds sort after
// earlier ones.
func (g *Generator) Generate() string {
	ms := uint64(g.clock.Now().UnixMilli()) & (1<<48 - 1)
	random := g.rng.Uint64() & (1<<35 - 1)

	var b strings.Builder
	b.Grow(Length)
	encode(&b, ms, timeChars)
	encode(&b, random, randChars)
	return b.String()
}

// encode writes the low n*5 bits of v as n characters, most significant first
func encode(b *strings.Builder, v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(alphabet[(v>>(uint(i)*5))&0x1f])
	}
}

// Validate checks that id has the right length and alphabet
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
