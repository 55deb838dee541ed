package statistics

import (
	"math"
	"testing"
)

func TestSession_Seeded(t *testing.T) {
	s := NewSession()

	if s.GamesPlayed != 9 || s.DealerWins != 5 {
		t.Fatalf("Expected 5/9 seed, got %d/%d", s.DealerWins, s.GamesPlayed)
	}
	if math.Abs(s.WinRate()-5.0/9.0) > 1e-12 {
		t.Errorf("Expected win rate 5/9, got %f", s.WinRate())
	}
	if s.Rounds != 0 || s.HouseWins() != 0 {
		t.Errorf("Seed must not count as played rounds")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Fresh session should validate: %v", err)
	}
}

func TestSession_ZeroGames(t *testing.T) {
	s := NewSeededSession(0, 0)
	if s.WinRate() != 0 {
		t.Errorf("Expected 0 win rate with no games, got %f", s.WinRate())
	}
}

func TestSession_Record(t *testing.T) {
	s := NewSession()

	s.StartRound()
	s.Record(Result{DealerWon: true, PlayerBust: true})
	s.StartRound()
	s.Record(Result{Push: true, Cheated: true, Discarded: 4})
	s.StartRound()
	s.Record(Result{DealerBust: true})

	if s.GamesPlayed != 12 {
		t.Errorf("Expected 12 games played, got %d", s.GamesPlayed)
	}
	if s.DealerWins != 6 {
		t.Errorf("Expected 6 dealer wins (push is not a dealer win), got %d", s.DealerWins)
	}
	if s.Pushes != 1 || s.PlayerWins != 1 {
		t.Errorf("Expected 1 push and 1 player win, got %d and %d", s.Pushes, s.PlayerWins)
	}
	if s.PlayerBusts != 1 || s.DealerBusts != 1 {
		t.Errorf("Expected one bust each, got player=%d dealer=%d", s.PlayerBusts, s.DealerBusts)
	}
	if s.CheatedRounds != 1 || s.CardsDiscarded != 4 {
		t.Errorf("Expected 1 cheated round with 4 discards, got %d and %d", s.CheatedRounds, s.CardsDiscarded)
	}
	if s.HouseRate() != 1.0/3.0 {
		t.Errorf("Expected house rate 1/3, got %f", s.HouseRate())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Session should validate: %v", err)
	}
}

func TestSession_UnresolvedRound(t *testing.T) {
	s := NewSession()
	s.StartRound()

	if err := s.Validate(); err != nil {
		t.Errorf("A started but unresolved round is valid: %v", err)
	}

	s.Resolved = 2
	if err := s.Validate(); err == nil {
		t.Error("Expected error when resolved exceeds started rounds")
	}
}

func TestTotals(t *testing.T) {
	a := NewSeededSession(0, 0)
	a.StartRound()
	a.Record(Result{DealerWon: true})
	a.StartRound()
	a.Record(Result{})

	b := NewSeededSession(0, 0)
	b.StartRound()
	b.Record(Result{DealerWon: true, Cheated: true, Discarded: 2})

	var totals Totals
	totals.Add(a)
	totals.Add(b)

	if totals.Sessions != 2 || totals.Rounds != 3 || totals.Resolved != 3 {
		t.Fatalf("Unexpected totals: %+v", totals)
	}
	if totals.HouseWins != 2 || totals.PlayerWins != 1 {
		t.Errorf("Expected 2 house wins and 1 player win, got %d and %d", totals.HouseWins, totals.PlayerWins)
	}
	if math.Abs(totals.Mean()-0.75) > 1e-12 {
		t.Errorf("Expected mean final win rate 0.75, got %f", totals.Mean())
	}
	if math.Abs(totals.Median()-0.75) > 1e-12 {
		t.Errorf("Expected median 0.75, got %f", totals.Median())
	}
	low, high := totals.ConfidenceInterval95()
	if low > totals.Mean() || high < totals.Mean() {
		t.Errorf("Mean %f outside CI [%f, %f]", totals.Mean(), low, high)
	}
	if totals.Summary() == "" {
		t.Error("Expected non-empty summary")
	}
}

func TestTotals_Empty(t *testing.T) {
	var totals Totals
	if totals.Mean() != 0 || totals.Variance() != 0 || totals.Median() != 0 {
		t.Error("Expected zero aggregates for empty totals")
	}
	if totals.HouseRate() != 0 || totals.CheatRate() != 0 {
		t.Error("Expected zero rates for empty totals")
	}
}

func TestSession_SettledWinRate(t *testing.T) {
	s := NewSession()
	s.StartRound()

	if s.WinRate() != 0.5 {
		t.Errorf("Expected raw win rate 5/10 with a round open, got %f", s.WinRate())
	}
	if s.SettledWinRate() != 5.0/9.0 {
		t.Errorf("Expected settled win rate 5/9 with a round open, got %f", s.SettledWinRate())
	}

	s.Record(Result{DealerWon: true})
	if s.SettledWinRate() != 0.6 || s.WinRate() != 0.6 {
		t.Errorf("Expected both rates 6/10 once resolved, got %f and %f", s.SettledWinRate(), s.WinRate())
	}
}
