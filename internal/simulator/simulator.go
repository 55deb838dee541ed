// Package simulator plays many independent sessions of automated rounds to
// measure how the adaptive dealer fares against a fixed player policy.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// DefaultStandOn is the total the simulated player stops drawing at
const DefaultStandOn = 17

// Config holds configuration for running simulations
type Config struct {
	Sessions         int
	RoundsPerSession int
	StandOn          int // Player draws while below this total
	Seed             int64
	Workers          int           // Sessions run in parallel; 0 uses GOMAXPROCS
	Timeout          time.Duration // Per session; 0 disables
	Strategy         game.Strategy
	SeedGames        int
	SeedWins         int
	DeckOptions      []deck.Option
	Logger           *log.Logger
}

// Simulator runs blackjack session simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.StandOn == 0 {
		config.StandOn = DefaultStandOn
	}
	if config.Strategy == (game.Strategy{}) {
		config.Strategy = game.DefaultStrategy()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run plays every session and returns the merged totals. Each session gets
// its own engine, seeded from the base seed and its index, so results do not
// depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Totals, error) {
	if s.config.Sessions <= 0 || s.config.RoundsPerSession <= 0 {
		return nil, errors.New("sessions and rounds per session must be positive")
	}

	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"sessions", s.config.Sessions,
		"rounds", s.config.RoundsPerSession,
		"standOn", s.config.StandOn,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	sessions := make([]*statistics.Session, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Sessions {
		g.Go(func() error {
			stats, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			sessions[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := &statistics.Totals{}
	for _, stats := range sessions {
		totals.Add(stats)
	}
	logger.Info("Simulation complete",
		"rounds", totals.Rounds,
		"houseRate", totals.HouseRate(),
		"cheatRate", totals.CheatRate())
	return totals, nil
}

// playSession runs one session to completion
func (s *Simulator) playSession(ctx context.Context, index int) (*statistics.Session, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	stats := statistics.NewSeededSession(s.config.SeedGames, s.config.SeedWins)
	seed := randutil.Derive(s.config.Seed, index)
	engine := game.NewEngine(stats, randutil.New(seed), s.config.Logger.With("session", index+1),
		game.WithStrategy(s.config.Strategy),
		game.WithDeckOptions(s.config.DeckOptions...))
	player := game.StandOn(s.config.StandOn)

	for round := 1; round <= s.config.RoundsPerSession; round++ {
		if _, err := engine.PlayRound(ctx, player); err != nil {
			return nil, fmt.Errorf("round %d (seed %d): %w", round, seed, err)
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}
