// Package statistics tracks the running house record that drives the
// dealer's adaptive strategy, and aggregates records across sessions.
package statistics

import "fmt"

// Seed counters every new session starts from, so the dealer has a win rate
// to react to before any round completes (5/9 ≈ 55.6%).
const (
	DefaultSeedGames = 9
	DefaultSeedWins  = 5
)

// Result describes how a single round was resolved
type Result struct {
	DealerWon  bool
	Push       bool
	PlayerBust bool
	DealerBust bool
	Cheated    bool // Dealer drew with the rigged deck
	Discarded  int  // Cards thrown away by rigged draws
}

// Session holds counters for one process run. GamesPlayed and DealerWins
// include the seed; the remaining tallies count only rounds actually played.
// Counters only ever increase.
type Session struct {
	GamesPlayed int
	DealerWins  int

	Rounds         int // Rounds started
	Resolved       int // Rounds that reached an outcome
	PlayerWins     int
	Pushes         int
	PlayerBusts    int
	DealerBusts    int
	CheatedRounds  int
	CardsDiscarded int

	seedGames int
	seedWins  int
}

// NewSession returns a session seeded with the default 5/9 record
func NewSession() *Session {
	return NewSeededSession(DefaultSeedGames, DefaultSeedWins)
}

// NewSeededSession returns a session seeded with an arbitrary record
func NewSeededSession(games, wins int) *Session {
	return &Session{
		GamesPlayed: games,
		DealerWins:  wins,
		seedGames:   games,
		seedWins:    wins,
	}
}

// WinRate returns DealerWins / GamesPlayed, or 0 before any game is counted
func (s *Session) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.DealerWins) / float64(s.GamesPlayed)
}

// SettledWinRate returns the win rate over the seed plus resolved rounds
// only, leaving out any round that has started but not finished
func (s *Session) SettledWinRate() float64 {
	games := s.seedGames + s.Resolved
	if games == 0 {
		return 0
	}
	return float64(s.DealerWins) / float64(games)
}

// StartRound counts a round as played
func (s *Session) StartRound() {
	s.GamesPlayed++
	s.Rounds++
}

// Record folds a resolved round into the counters
func (s *Session) Record(r Result) {
	s.Resolved++
	switch {
	case r.DealerWon:
		s.DealerWins++
	case r.Push:
		s.Pushes++
	default:
		s.PlayerWins++
	}
	if r.PlayerBust {
		s.PlayerBusts++
	}
	if r.DealerBust {
		s.DealerBusts++
	}
	if r.Cheated {
		s.CheatedRounds++
	}
	s.CardsDiscarded += r.Discarded
}

// HouseWins returns the dealer wins earned in played rounds, excluding the seed
func (s *Session) HouseWins() int {
	return s.DealerWins - s.seedWins
}

// HouseRate returns the fraction of resolved rounds the dealer won, excluding
// the seed
func (s *Session) HouseRate() float64 {
	if s.Resolved == 0 {
		return 0
	}
	return float64(s.HouseWins()) / float64(s.Resolved)
}

// Validate checks that the counters are consistent with each other
func (s *Session) Validate() error {
	if s.GamesPlayed-s.seedGames != s.Rounds {
		return fmt.Errorf("games played (%d) minus seed (%d) does not match rounds (%d)",
			s.GamesPlayed, s.seedGames, s.Rounds)
	}
	if s.Resolved > s.Rounds {
		return fmt.Errorf("resolved rounds (%d) exceed started rounds (%d)", s.Resolved, s.Rounds)
	}
	if sum := s.HouseWins() + s.PlayerWins + s.Pushes; sum != s.Resolved {
		return fmt.Errorf("outcome tallies (%d) do not match resolved rounds (%d)", sum, s.Resolved)
	}
	if s.DealerWins > s.GamesPlayed {
		return fmt.Errorf("dealer wins (%d) exceed games played (%d)", s.DealerWins, s.GamesPlayed)
	}
	return nil
}

// String renders the counters on one line
func (s *Session) String() string {
	return fmt.Sprintf("games=%d dealer_wins=%d win_rate=%.3f player_wins=%d pushes=%d",
		s.GamesPlayed, s.DealerWins, s.WinRate(), s.PlayerWins, s.Pushes)
}
