package deck

import (
	"errors"
	rand "math/rand/v2"
)

// Size is the number of cards in a freshly populated deck
const Size = 52

// DefaultCheatRank is the highest value a rigged draw will hand out
const DefaultCheatRank = 3

var (
	// ErrEmpty is returned when dealing from an exhausted pile
	ErrEmpty = errors.New("deck is empty")
	// ErrNoLowCard is returned when a rigged draw discards the whole pile
	// without finding a card at or below the cheat rank
	ErrNoLowCard = errors.New("no low card left in deck")
	// ErrDiscardLimit is returned when a rigged draw reaches its discard cap
	ErrDiscardLimit = errors.New("cheat discard limit reached")
)

// Deck is a draw pile. The top of the pile is the most recently added card.
type Deck struct {
	pile         Sequence
	rng          *rand.Rand
	cheatRank    int
	discardLimit int
}

// Option configures a Deck
type Option func(*Deck)

// WithCheatRank sets the highest value a rigged draw may deal
func WithCheatRank(rank int) Option {
	return func(d *Deck) { d.cheatRank = rank }
}

// WithDiscardLimit caps how many cards one rigged draw may throw away.
// Zero means unbounded.
func WithDiscardLimit(n int) Option {
	return func(d *Deck) { d.discardLimit = n }
}

// New creates an empty deck that shuffles with rng. Call Reset (or Populate
// and Shuffle) before dealing.
func New(rng *rand.Rand, opts ...Option) *Deck {
	d := &Deck{
		pile:      Sequence{cards: make([]Card, 0, Size)},
		rng:       rng,
		cheatRank: DefaultCheatRank,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewStacked creates a deck holding exactly cards, dealt in the order given:
// cards[0] comes off the top first. It is not shuffled.
func NewStacked(cards []Card, opts ...Option) *Deck {
	d := New(nil, opts...)
	for i := len(cards) - 1; i >= 0; i-- {
		d.pile.Add(cards[i])
	}
	return d
}

// Clear empties the pile
func (d *Deck) Clear() {
	d.pile.Clear()
}

// Populate appends one card per (rank, suit) pair, rank-major. The pile must
// be empty.
func (d *Deck) Populate() {
	if d.pile.Len() != 0 {
		panic("deck: populate called on a non-empty pile")
	}
	for _, r := range Ranks {
		for _, s := range Suits {
			d.pile.Add(NewCard(r, s))
		}
	}
}

// Shuffle permutes the pile uniformly at random
func (d *Deck) Shuffle() {
	cards := d.pile.cards
	d.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Reset clears, repopulates and shuffles the pile
func (d *Deck) Reset() {
	d.Clear()
	d.Populate()
	d.Shuffle()
}

// Remaining returns the number of cards left in the pile
func (d *Deck) Remaining() int {
	return d.pile.Len()
}

// contents returns a copy of the pile, top card last
func (d *Deck) contents() []Card {
	return d.pile.Cards()
}

// Deal moves the top card into target. An Ace is upgraded to 11 when that
// does not take target over 21.
func (d *Deck) Deal(target Receiver) (Card, error) {
	c, ok := d.pile.pop()
	if !ok {
		return Card{}, ErrEmpty
	}
	give(target, c)
	return c, nil
}

// Cheat throws away top cards valued above the cheat rank until a low card
// surfaces, then deals that card like Deal. It returns the dealt card and the
// number of cards thrown away; discarded cards are gone for the rest of the
// round even when an error is returned.
func (d *Deck) Cheat(target Receiver) (Card, int, error) {
	skipped := 0
	for {
		c, ok := d.pile.last()
		if !ok {
			return Card{}, skipped, ErrNoLowCard
		}
		if c.Value() <= d.cheatRank {
			d.pile.pop()
			give(target, c)
			return c, skipped, nil
		}
		if d.discardLimit > 0 && skipped >= d.discardLimit {
			return Card{}, skipped, ErrDiscardLimit
		}
		d.pile.pop()
		skipped++
	}
}

// give adds c to target. The Ace check runs on the total after the base 1
// is added, so an Ace upgrades whenever 11 still fits under 21, including
// on a pre-Ace total of 10. Checking total+11 before the add would refuse
// that case.
func give(target Receiver, c Card) {
	target.Add(c)
	if c.IsAce() && target.Total()+10 <= 21 {
		target.AddValue(10)
	}
}
