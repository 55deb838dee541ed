package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/statistics"
)

func sampleTotals() *statistics.Totals {
	totals := &statistics.Totals{}
	for _, dealerWon := range []bool{true, false} {
		s := statistics.NewSeededSession(9, 5)
		s.StartRound()
		s.Record(statistics.Result{DealerWon: dealerWon, Cheated: !dealerWon, Discarded: 2})
		totals.Add(s)
	}
	return totals
}

func TestFromTotals(t *testing.T) {
	r := FromTotals(sampleTotals())

	assert.Equal(t, 2, r.Rounds)
	assert.Equal(t, 2, r.Resolved)
	assert.Equal(t, 1, r.HouseWins)
	assert.Equal(t, 1, r.PlayerWins)
	assert.Equal(t, 1, r.CheatedRounds)
	assert.Equal(t, 4, r.CardsDiscarded)
	assert.InDelta(t, 0.5, r.HouseRate, 1e-12)
	assert.InDelta(t, 0.55, r.MeanWinRate, 1e-12)
	assert.LessOrEqual(t, r.WinRateCILow, r.MeanWinRate)
	assert.GreaterOrEqual(t, r.WinRateCIHigh, r.MeanWinRate)
}

func TestEncode(t *testing.T) {
	out := string(Encode(&Report{
		ID:               "01h2xcejqt0000000",
		Seed:             42,
		Sessions:         2,
		RoundsPerSession: 1,
		StandOn:          17,
		Elapsed:          "12ms",
		Results:          FromTotals(sampleTotals()),
	}))

	assert.Contains(t, out, `id`)
	assert.Contains(t, out, `"01h2xcejqt0000000"`)
	assert.Contains(t, out, "results {")
	assert.Contains(t, out, "house_wins")
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.hcl")
	want := &Report{
		ID:               "01h2xcejqt0000000",
		Seed:             -7,
		Sessions:         2,
		RoundsPerSession: 1,
		StandOn:          17,
		Elapsed:          "12ms",
		Results:          FromTotals(sampleTotals()),
	}

	require.NoError(t, Write(path, want))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Seed, got.Seed)
	assert.Equal(t, want.StandOn, got.StandOn)
	require.NotNil(t, got.Results)
	assert.Equal(t, want.Results.HouseWins, got.Results.HouseWins)
	assert.InDelta(t, want.Results.MeanWinRate, got.Results.MeanWinRate, 1e-9)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is renamed away")
}

func TestWrite_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.hcl")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, Write(path, &Report{ID: "x", Results: &Results{}}))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "x", got.ID)
}

func TestWrite_MissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "report.hcl"), &Report{Results: &Results{}})
	assert.Error(t, err)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("id = 1\nunknown = true\n"), 0o644))
	_, err = Read(bad)
	assert.Error(t, err)
}
