package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/sessionid"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	Seed         int64  `help:"Shuffle seed for a reproducible game (0 shuffles randomly)"`
	TUI          bool   `name:"tui" help:"Use the full-screen interface"`
	NoColor      bool   `help:"Disable colored output"`
	LogFile      string `help:"Write logs here instead of the configured file"`
	ShowDiscards bool   `help:"Show how many cards the dealer threw away"`
	Codes        bool   `help:"Print cards as value and suit letter (10H) instead of faces"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	logPath := cfg.UI.LogFile
	if c.LogFile != "" {
		logPath = c.LogFile
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger, err := newLogger(logFile, cfg.UI.LogLevel, "blackjack")
	if err != nil {
		return err
	}
	logger = logger.With("session", sessionid.New())

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	logger.Info("Starting game", "seed", seed, "config", g.Config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := game.NewEngine(cfg.NewSession(), randutil.New(seed), logger,
		game.WithStrategy(cfg.GameStrategy()),
		game.WithDeckOptions(cfg.DeckOptions()...))
	table := game.NewTable(engine, cfg.Session.MaxPlayers)

	opts := []console.Option{
		console.WithColor(cfg.ColorEnabled() && !c.NoColor),
		console.WithDiscards(c.ShowDiscards),
		console.WithCodes(c.Codes || cfg.UI.CardCodes),
	}

	var (
		out      io.Writer = os.Stdout
		prompter console.Prompter
	)
	if c.TUI || cfg.UI.Mode == "tui" {
		ui := tui.NewPrompter(logger)
		ui.Start()
		defer func() {
			if err := ui.Close(); err != nil {
				logger.Error("Failed to close TUI", "error", err)
			}
		}()
		engine.EventBus().Subscribe(ui)
		out = ui
		prompter = ui
		opts = append(opts, console.WithProfile(termenv.EnvColorProfile()))
	}

	con := console.New(os.Stdin, out, opts...)
	if prompter == nil {
		prompter = con
	}
	engine.EventBus().Subscribe(con)

	err = con.Run(ctx, table, prompter, cfg.Session.MaxPlayers)
	stats := engine.Stats()
	logger.Info("Game finished",
		"games", stats.GamesPlayed,
		"dealerWins", stats.DealerWins,
		"winRate", stats.WinRate(),
		"houseRate", stats.HouseRate(),
		"cheatedRounds", stats.CheatedRounds)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
