package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// HandView is the read-only state shown to a human before each draw decision
type HandView struct {
	Cards       []deck.Card
	Total       int
	DealerCards []deck.Card
	DealerTotal int
}

// Decider supplies a human player's draw decisions. Implementations may block
// on user input.
type Decider interface {
	DecideDraw(view HandView) (bool, error)
}

// DeciderFunc adapts a function to the Decider interface
type DeciderFunc func(view HandView) (bool, error)

// DecideDraw calls f(view)
func (f DeciderFunc) DecideDraw(view HandView) (bool, error) {
	return f(view)
}

// StandOn returns a decider that draws until its total reaches limit
func StandOn(limit int) Decider {
	return DeciderFunc(func(view HandView) (bool, error) {
		return view.Total < limit, nil
	})
}

// NeverDraw returns a decider that always stands on the initial two cards
func NeverDraw() Decider {
	return DeciderFunc(func(HandView) (bool, error) {
		return false, nil
	})
}
