package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Totals aggregates the results of many independent sessions
type Totals struct {
	Sessions       int
	Rounds         int
	Resolved       int
	HouseWins      int
	PlayerWins     int
	Pushes         int
	PlayerBusts    int
	DealerBusts    int
	CheatedRounds  int
	CardsDiscarded int

	SumRate  float64
	SumRate2 float64   // Sum of squares for variance calculation
	Values   []float64 // Final win rate of every session
}

// Add incorporates a finished session
func (t *Totals) Add(s *Session) {
	t.Sessions++
	t.Rounds += s.Rounds
	t.Resolved += s.Resolved
	t.HouseWins += s.HouseWins()
	t.PlayerWins += s.PlayerWins
	t.Pushes += s.Pushes
	t.PlayerBusts += s.PlayerBusts
	t.DealerBusts += s.DealerBusts
	t.CheatedRounds += s.CheatedRounds
	t.CardsDiscarded += s.CardsDiscarded

	rate := s.WinRate()
	t.SumRate += rate
	t.SumRate2 += rate * rate
	t.Values = append(t.Values, rate)
}

// HouseRate returns the fraction of resolved rounds won by the dealer
func (t *Totals) HouseRate() float64 {
	if t.Resolved == 0 {
		return 0
	}
	return float64(t.HouseWins) / float64(t.Resolved)
}

// CheatRate returns the fraction of rounds in which the dealer cheated
func (t *Totals) CheatRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.CheatedRounds) / float64(t.Rounds)
}

// Mean returns the mean final win rate across sessions
func (t *Totals) Mean() float64 {
	if t.Sessions == 0 {
		return 0
	}
	return t.SumRate / float64(t.Sessions)
}

// Variance returns the sample variance of final win rates
func (t *Totals) Variance() float64 {
	if t.Sessions < 2 {
		return 0
	}
	mean := t.Mean()
	v := (t.SumRate2 - float64(t.Sessions)*mean*mean) / float64(t.Sessions-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of final win rates
func (t *Totals) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (t *Totals) ConfidenceInterval95() (float64, float64) {
	if t.Sessions == 0 {
		return 0, 0
	}
	mean := t.Mean()
	margin := 1.96 * t.StdDev() / math.Sqrt(float64(t.Sessions))
	return mean - margin, mean + margin
}

// Median returns the median final win rate
func (t *Totals) Median() float64 {
	if len(t.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(t.Values))
	copy(sorted, t.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Summary renders a multi-line report
func (t *Totals) Summary() string {
	var b strings.Builder
	low, high := t.ConfidenceInterval95()
	fmt.Fprintf(&b, "Sessions:        %d\n", t.Sessions)
	fmt.Fprintf(&b, "Rounds:          %d (%d resolved)\n", t.Rounds, t.Resolved)
	fmt.Fprintf(&b, "House wins:      %d (%.1f%%)\n", t.HouseWins, 100*t.HouseRate())
	fmt.Fprintf(&b, "Player wins:     %d\n", t.PlayerWins)
	fmt.Fprintf(&b, "Pushes:          %d\n", t.Pushes)
	fmt.Fprintf(&b, "Player busts:    %d\n", t.PlayerBusts)
	fmt.Fprintf(&b, "Dealer busts:    %d\n", t.DealerBusts)
	fmt.Fprintf(&b, "Cheated rounds:  %d (%.1f%%)\n", t.CheatedRounds, 100*t.CheatRate())
	fmt.Fprintf(&b, "Cards discarded: %d\n", t.CardsDiscarded)
	fmt.Fprintf(&b, "Final win rate:  mean %.3f, median %.3f, 95%% CI [%.3f, %.3f]\n",
		t.Mean(), t.Median(), low, high)
	return b.String()
}
