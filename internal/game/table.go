package game

import (
	"context"
	"strings"
)

// DefaultMaxPlayers is the largest player count a session accepts
const DefaultMaxPlayers = 3

// ParsePlayerCount reads a player count from the first non-blank character
// of answer. Anything that is not a digit counts as zero players.
func ParsePlayerCount(answer string) int {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0
	}
	c := answer[0]
	if c < '0' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// Table runs the player rounds of one game: each player in turn plays a full
// round against a fresh dealer and deck, all feeding one session record.
type Table struct {
	engine     *Engine
	maxPlayers int
}

// NewTable creates a table around engine
func NewTable(engine *Engine, maxPlayers int) *Table {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	return &Table{engine: engine, maxPlayers: maxPlayers}
}

// SeatFunc is called before each player's round with the 1-based seat number
// and returns the decider for that seat
type SeatFunc func(seat int) Decider

// Play runs one round per player. A count outside 1..maxPlayers plays no
// rounds and is not an error.
func (t *Table) Play(ctx context.Context, players int, seat SeatFunc) ([]*RoundResult, error) {
	if players < 1 || players > t.maxPlayers {
		t.engine.logger.Debug("Ignoring player count", "players", players, "max", t.maxPlayers)
		return nil, nil
	}

	results := make([]*RoundResult, 0, players)
	for i := 1; i <= players; i++ {
		result, err := t.engine.PlayRound(ctx, seat(i))
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
