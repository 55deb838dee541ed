package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// BustLimit is the highest total a hand can hold without busting
const BustLimit = 21

// DefaultStandLimit is the dealer's stand limit when no strategy has set one
const DefaultStandLimit = 16

// Player is a seat at the table: a hand plus a policy for taking another card
type Player interface {
	Name() string
	Hand() *deck.Sequence
	// ShouldDraw reports whether the player wants another card
	ShouldDraw() (bool, error)
	IsBusted() bool
}

// seat holds the state shared by every player variant
type seat struct {
	name string
	hand deck.Sequence
}

func (s *seat) Name() string { return s.name }

func (s *seat) Hand() *deck.Sequence { return &s.hand }

// Total returns the current hand total
func (s *seat) Total() int { return s.hand.Total() }

// IsBusted returns true once the hand total exceeds 21
func (s *seat) IsBusted() bool { return s.hand.Total() > BustLimit }

// Dealer is the house. It draws while its total is at or below StandLimit.
type Dealer struct {
	seat
	StandLimit int
}

// NewDealer creates a dealer with the default stand limit
func NewDealer(name string) *Dealer {
	return &Dealer{
		seat:       seat{name: name},
		StandLimit: DefaultStandLimit,
	}
}

// WantsCard reports whether the total is still at or below StandLimit
func (d *Dealer) WantsCard() bool {
	return d.hand.Total() <= d.StandLimit
}

// ShouldDraw implements Player. It never fails.
func (d *Dealer) ShouldDraw() (bool, error) {
	return d.WantsCard(), nil
}

// Human is a player whose draw decisions come from a Decider
type Human struct {
	seat
	dealer  *Dealer
	decider Decider
}

// NewHuman creates a human player sitting against dealer
func NewHuman(name string, dealer *Dealer, decider Decider) *Human {
	return &Human{
		seat:    seat{name: name},
		dealer:  dealer,
		decider: decider,
	}
}

// ShouldDraw asks the decider, showing it both hands
func (h *Human) ShouldDraw() (bool, error) {
	return h.decider.DecideDraw(HandView{
		Cards:       h.hand.Cards(),
		Total:       h.hand.Total(),
		DealerCards: h.dealer.hand.Cards(),
		DealerTotal: h.dealer.hand.Total(),
	})
}

// Announce compares totals with the dealer. Equal totals push; the human
// wins only with a strictly greater total.
func (h *Human) Announce() Outcome {
	mine, theirs := h.hand.Total(), h.dealer.Total()
	switch {
	case mine == theirs:
		return Push
	case mine > theirs:
		return PlayerWin
	default:
		return DealerWin
	}
}
