// Package report writes simulation results as HCL files.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/blackjack/internal/statistics"
)

// Report describes one simulation run
type Report struct {
	ID               string   `hcl:"id"`
	Seed             int64    `hcl:"seed"`
	Sessions         int      `hcl:"sessions"`
	RoundsPerSession int      `hcl:"rounds_per_session"`
	StandOn          int      `hcl:"stand_on"`
	Elapsed          string   `hcl:"elapsed"`
	Results          *Results `hcl:"results,block"`
}

// Results are the merged session totals
type Results struct {
	Rounds         int     `hcl:"rounds"`
	Resolved       int     `hcl:"resolved"`
	HouseWins      int     `hcl:"house_wins"`
	PlayerWins     int     `hcl:"player_wins"`
	Pushes         int     `hcl:"pushes"`
	PlayerBusts    int     `hcl:"player_busts"`
	DealerBusts    int     `hcl:"dealer_busts"`
	CheatedRounds  int     `hcl:"cheated_rounds"`
	CardsDiscarded int     `hcl:"cards_discarded"`
	HouseRate      float64 `hcl:"house_rate"`
	CheatRate      float64 `hcl:"cheat_rate"`
	MeanWinRate    float64 `hcl:"mean_win_rate"`
	MedianWinRate  float64 `hcl:"median_win_rate"`
	WinRateCILow   float64 `hcl:"win_rate_ci_low"`
	WinRateCIHigh  float64 `hcl:"win_rate_ci_high"`
}

// FromTotals summarises t
func FromTotals(t *statistics.Totals) *Results {
	low, high := t.ConfidenceInterval95()
	return &Results{
		Rounds:         t.Rounds,
		Resolved:       t.Resolved,
		HouseWins:      t.HouseWins,
		PlayerWins:     t.PlayerWins,
		Pushes:         t.Pushes,
		PlayerBusts:    t.PlayerBusts,
		DealerBusts:    t.DealerBusts,
		CheatedRounds:  t.CheatedRounds,
		CardsDiscarded: t.CardsDiscarded,
		HouseRate:      t.HouseRate(),
		CheatRate:      t.CheatRate(),
		MeanWinRate:    t.Mean(),
		MedianWinRate:  t.Median(),
		WinRateCILow:   low,
		WinRateCIHigh:  high,
	}
}

// Encode renders r as HCL
func Encode(r *Report) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(r, f.Body())
	return f.Bytes()
}

// Read parses a report written by Write
func Read(filename string) (*Report, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse report: %s", diags.Error())
	}

	var r Report
	if diags := gohcl.DecodeBody(file.Body, nil, &r); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode report: %s", diags.Error())
	}
	return &r, nil
}

// Write stores r at filename. The file is written to a temporary name in
// the same directory and renamed into place, so readers never see a partial
// report.
func Write(filename string, r *Report) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(Encode(r)); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
