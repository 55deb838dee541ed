package game

import "fmt"

// Strategy picks the dealer's behaviour from the session win rate
type Strategy struct {
	// Threshold below which the dealer plays aggressively and cheats
	Threshold float64
	// AggressiveLimit is the stand limit used below Threshold
	AggressiveLimit int
	// RelaxedLimit is the stand limit used at or above Threshold
	RelaxedLimit int
}

// DefaultStrategy returns the house defaults: below 55% the dealer stands
// on 19 and cheats, otherwise it stands on 17 and deals fairly.
func DefaultStrategy() Strategy {
	return Strategy{
		Threshold:       0.55,
		AggressiveLimit: 18,
		RelaxedLimit:    DefaultStandLimit,
	}
}

// Plan is the dealer behaviour chosen for one round
type Plan struct {
	StandLimit int
	Cheat      bool
}

// Plan returns the dealer plan for winRate. The threshold is exclusive on
// the low side: a win rate exactly at Threshold is relaxed.
func (s Strategy) Plan(winRate float64) Plan {
	if winRate < s.Threshold {
		return Plan{StandLimit: s.AggressiveLimit, Cheat: true}
	}
	return Plan{StandLimit: s.RelaxedLimit, Cheat: false}
}

// Validate checks the strategy for nonsensical values
func (s Strategy) Validate() error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("win rate threshold must be within [0, 1], got %v", s.Threshold)
	}
	if s.AggressiveLimit < 1 || s.AggressiveLimit > BustLimit {
		return fmt.Errorf("aggressive stand limit must be within [1, %d], got %d", BustLimit, s.AggressiveLimit)
	}
	if s.RelaxedLimit < 1 || s.RelaxedLimit > BustLimit {
		return fmt.Errorf("relaxed stand limit must be within [1, %d], got %d", BustLimit, s.RelaxedLimit)
	}
	return nil
}
