// Package game implements a single-deck blackjack round between a human
// player and an adaptive house dealer.
//
// The main type is Engine, which owns the deck and the session counters and
// plays one round at a time:
//
//	stats := statistics.NewSession()
//	engine := game.NewEngine(stats, randutil.NewEntropy(), logger)
//	result, err := engine.PlayRound(ctx, decider)
//
// # Adaptive dealer
//
// Before the dealer acts, the engine reads the session win rate (dealer
// wins / games played, counting only resolved rounds). When it is below the
// strategy threshold the dealer stands later and draws from a rigged pile
// that only ever hands it low cards. Otherwise the dealer stands on 17 and
// draws fairly. The win rate is read once per round, so the decision
// reflects completed rounds only.
//
// # Deterministic Testing
//
// Seed the deck through randutil.New, or play against a stacked deck:
//
//	d := deck.NewStacked(deck.MustParseCards("Kc 9h Ts 7d"))
//	result, err := engine.PlayRoundWith(ctx, d, game.StandOn(17))
package game
