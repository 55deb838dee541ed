package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/report"
	"github.com/lox/blackjack/internal/sessionid"
	"github.com/lox/blackjack/internal/simulator"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#2E7D32")).
	Padding(0, 1).
	Bold(true)

type SimulateCmd struct {
	Sessions int           `help:"Number of independent sessions" default:"100"`
	Rounds   int           `help:"Rounds per session" default:"1000"`
	StandOn  int           `help:"Simulated player draws while below this total" default:"17"`
	Workers  int           `help:"Sessions run in parallel (0 for one per CPU)" default:"0"`
	Seed     int64         `help:"Base seed (0 picks a random one)"`
	Timeout  time.Duration `help:"Abort a session that runs longer than this" default:"1m"`
	Report   string        `help:"Write the results to this HCL file" type:"path"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.UI.LogLevel, "blackjack")
	if err != nil {
		return err
	}
	id := sessionid.New()
	logger = logger.With("run", id)

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seedGames, seedWins := cfg.SeedRecord()
	start := time.Now()
	totals, err := simulator.New(simulator.Config{
		Sessions:         c.Sessions,
		RoundsPerSession: c.Rounds,
		StandOn:          c.StandOn,
		Seed:             seed,
		Workers:          c.Workers,
		Timeout:          c.Timeout,
		Strategy:         cfg.GameStrategy(),
		SeedGames:        seedGames,
		SeedWins:         seedWins,
		DeckOptions:      cfg.DeckOptions(),
		Logger:           logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	elapsed := time.Since(start).Round(time.Millisecond)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Simulation %s (seed %d, %s)", id, seed, elapsed)))
	fmt.Println()
	fmt.Print(totals.Summary())

	if c.Report != "" {
		err := report.Write(c.Report, &report.Report{
			ID:               id,
			Seed:             seed,
			Sessions:         c.Sessions,
			RoundsPerSession: c.Rounds,
			StandOn:          c.StandOn,
			Elapsed:          elapsed.String(),
			Results:          report.FromTotals(totals),
		})
		if err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
