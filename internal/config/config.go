// Package config loads blackjack settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// Config represents the complete configuration
type Config struct {
	Strategy *StrategySettings `hcl:"strategy,block"`
	Session  *SessionSettings  `hcl:"session,block"`
	UI       *UISettings       `hcl:"ui,block"`
}

// StrategySettings controls the adaptive dealer
type StrategySettings struct {
	WinRateThreshold *float64 `hcl:"win_rate_threshold,optional"`
	AggressiveLimit  int      `hcl:"aggressive_limit,optional"`
	RelaxedLimit     int      `hcl:"relaxed_limit,optional"`
	CheatRankLimit   int      `hcl:"cheat_rank_limit,optional"`
	MaxCheatDiscards int      `hcl:"max_cheat_discards,optional"`
}

// SessionSettings controls the session record and table size. The seed
// counters are pointers so an explicit 0 is kept rather than defaulted.
type SessionSettings struct {
	SeedGamesPlayed *int `hcl:"seed_games_played,optional"`
	SeedDealerWins  *int `hcl:"seed_dealer_wins,optional"`
	MaxPlayers      int  `hcl:"max_players,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Mode      string `hcl:"mode,optional"`
	Color     *bool  `hcl:"color,optional"`
	CardCodes bool   `hcl:"card_codes,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color := true
	strategy := game.DefaultStrategy()
	threshold := strategy.Threshold
	seedGames, seedWins := statistics.DefaultSeedGames, statistics.DefaultSeedWins
	return &Config{
		Strategy: &StrategySettings{
			WinRateThreshold: &threshold,
			AggressiveLimit:  strategy.AggressiveLimit,
			RelaxedLimit:     strategy.RelaxedLimit,
			CheatRankLimit:   deck.DefaultCheatRank,
			MaxCheatDiscards: 0,
		},
		Session: &SessionSettings{
			SeedGamesPlayed: &seedGames,
			SeedDealerWins:  &seedWins,
			MaxPlayers:      game.DefaultMaxPlayers,
		},
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "blackjack.log",
			Mode:     "console",
			Color:    &color,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from the defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults(Default())
	return &config, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.Strategy == nil {
		c.Strategy = defaults.Strategy
	}
	if c.Session == nil {
		c.Session = defaults.Session
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Strategy.WinRateThreshold == nil {
		c.Strategy.WinRateThreshold = defaults.Strategy.WinRateThreshold
	}
	if c.Strategy.AggressiveLimit == 0 {
		c.Strategy.AggressiveLimit = defaults.Strategy.AggressiveLimit
	}
	if c.Strategy.RelaxedLimit == 0 {
		c.Strategy.RelaxedLimit = defaults.Strategy.RelaxedLimit
	}
	if c.Strategy.CheatRankLimit == 0 {
		c.Strategy.CheatRankLimit = defaults.Strategy.CheatRankLimit
	}

	if c.Session.SeedGamesPlayed == nil {
		c.Session.SeedGamesPlayed = defaults.Session.SeedGamesPlayed
	}
	if c.Session.SeedDealerWins == nil {
		c.Session.SeedDealerWins = defaults.Session.SeedDealerWins
	}
	if c.Session.MaxPlayers == 0 {
		c.Session.MaxPlayers = defaults.Session.MaxPlayers
	}

	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.GameStrategy().Validate(); err != nil {
		return err
	}
	if c.Strategy.CheatRankLimit < 1 || c.Strategy.CheatRankLimit > 10 {
		return fmt.Errorf("cheat rank limit must be within [1, 10], got %d", c.Strategy.CheatRankLimit)
	}
	if c.Strategy.MaxCheatDiscards < 0 {
		return fmt.Errorf("max cheat discards cannot be negative")
	}

	games, wins := c.SeedRecord()
	if games < 0 || wins < 0 {
		return fmt.Errorf("seed counters cannot be negative")
	}
	if wins > games {
		return fmt.Errorf("seed dealer wins (%d) cannot exceed seed games played (%d)", wins, games)
	}
	if c.Session.MaxPlayers < 1 || c.Session.MaxPlayers > 9 {
		return fmt.Errorf("max players must be within [1, 9], got %d", c.Session.MaxPlayers)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validModes := map[string]bool{
		"console": true,
		"tui":     true,
	}
	if !validModes[c.UI.Mode] {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	return nil
}

// GameStrategy returns the dealer strategy described by the configuration
func (c *Config) GameStrategy() game.Strategy {
	return game.Strategy{
		Threshold:       *c.Strategy.WinRateThreshold,
		AggressiveLimit: c.Strategy.AggressiveLimit,
		RelaxedLimit:    c.Strategy.RelaxedLimit,
	}
}

// DeckOptions returns the deck options described by the configuration
func (c *Config) DeckOptions() []deck.Option {
	return []deck.Option{
		deck.WithCheatRank(c.Strategy.CheatRankLimit),
		deck.WithDiscardLimit(c.Strategy.MaxCheatDiscards),
	}
}

// NewSession returns a session record seeded from the configuration
func (c *Config) NewSession() *statistics.Session {
	return statistics.NewSeededSession(c.SeedRecord())
}

// SeedRecord returns the games played and dealer wins a new session starts from
func (c *Config) SeedRecord() (games, wins int) {
	return *c.Session.SeedGamesPlayed, *c.Session.SeedDealerWins
}

// ColorEnabled reports whether styled output is enabled
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}
