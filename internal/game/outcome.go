package game

// Outcome is the result of a round from the table's point of view
type Outcome int

const (
	Push Outcome = iota
	PlayerWin
	DealerWin
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Push:
		return "push"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	default:
		return "unknown"
	}
}

// Reason explains how an outcome was reached
type Reason int

const (
	Comparison Reason = iota
	PlayerBust
	DealerBust
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case Comparison:
		return "comparison"
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	default:
		return "unknown"
	}
}
