package game

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/statistics"
)

// Default seat names, matching the console wording
const (
	DefaultPlayerName = "Player"
	DefaultDealerName = "Casino"
)

// RoundResult contains the results of a completed round
type RoundResult struct {
	Round        int
	Player       string
	Dealer       string
	Outcome      Outcome
	Reason       Reason
	PlayerCards  []deck.Card
	PlayerTotal  int
	DealerCards  []deck.Card
	DealerTotal  int
	DealerPlayed bool    // False when the player busted first
	WinRate      float64 // Win rate the dealer plan was chosen from
	Plan         Plan
	Discarded    int // Cards thrown away by rigged draws this round
	Duration     time.Duration
}

// Engine plays rounds against a single session record. It is not safe for
// concurrent use; run one engine per goroutine.
type Engine struct {
	stats      *statistics.Session
	deck       *deck.Deck
	deckOpts   []deck.Option
	strategy   Strategy
	logger     *log.Logger
	eventBus   EventBus
	clock      quartz.Clock
	round      int
	playerName string
	dealerName string
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithStrategy replaces the default dealer strategy
func WithStrategy(s Strategy) EngineOption {
	return func(e *Engine) { e.strategy = s }
}

// WithEventBus publishes round events on bus
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) { e.eventBus = bus }
}

// WithClock sets the clock used for event timestamps and round durations
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithDeckOptions configures the engine's deck
func WithDeckOptions(opts ...deck.Option) EngineOption {
	return func(e *Engine) { e.deckOpts = append(e.deckOpts, opts...) }
}

// WithNames sets the seat names used in events
func WithNames(player, dealer string) EngineOption {
	return func(e *Engine) {
		e.playerName = player
		e.dealerName = dealer
	}
}

// NewEngine creates an engine that records into stats and shuffles with rng
func NewEngine(stats *statistics.Session, rng *rand.Rand, logger *log.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		stats:      stats,
		strategy:   DefaultStrategy(),
		logger:     logger.WithPrefix("engine"),
		eventBus:   NewEventBus(),
		clock:      quartz.NewReal(),
		playerName: DefaultPlayerName,
		dealerName: DefaultDealerName,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.deck = deck.New(rng, e.deckOpts...)
	return e
}

// Stats returns the session record the engine writes to
func (e *Engine) Stats() *statistics.Session {
	return e.stats
}

// Strategy returns the dealer strategy
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// EventBus returns the event bus for subscribing to round events
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

// PlayRound refreshes the engine's deck and plays one round
func (e *Engine) PlayRound(ctx context.Context, decider Decider) (*RoundResult, error) {
	e.deck.Reset()
	return e.PlayRoundWith(ctx, e.deck, decider)
}

// PlayRoundWith plays one round dealing from d, which must already be
// populated. The session record is bumped on entry and written again only
// once the round resolves.
func (e *Engine) PlayRoundWith(ctx context.Context, d *deck.Deck, decider Decider) (*RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := e.clock.Now()
	e.stats.StartRound()
	e.round++
	logger := e.logger.With("round", e.round)
	e.eventBus.Publish(NewRoundStartEvent(e.round, e.stats.GamesPlayed, e.stats.DealerWins, start))

	dealer := NewDealer(e.dealerName)
	human := NewHuman(e.playerName, dealer, decider)
	result := &RoundResult{Round: e.round}

	// The dealer shows one card, the player gets two
	card, err := d.Deal(dealer.Hand())
	if err != nil {
		return nil, fmt.Errorf("deal to dealer: %w", err)
	}
	e.publishHand(dealer, true, card, 0)

	for range 2 {
		if card, err = d.Deal(human.Hand()); err != nil {
			return nil, fmt.Errorf("deal to player: %w", err)
		}
	}
	e.publishHand(human, false, card, 0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		draw, err := human.ShouldDraw()
		if err != nil {
			return nil, fmt.Errorf("player decision: %w", err)
		}
		if !draw {
			break
		}
		if card, err = d.Deal(human.Hand()); err != nil {
			return nil, fmt.Errorf("deal to player: %w", err)
		}
		logger.Debug("Player drew", "card", card, "total", human.Total())
		e.publishHand(human, false, card, 0)
		if human.IsBusted() {
			break
		}
	}

	if human.IsBusted() {
		logger.Debug("Player busted", "total", human.Total())
		return e.finish(start, result, human, dealer, DealerWin, PlayerBust), nil
	}

	result.DealerPlayed = true
	result.WinRate = e.stats.SettledWinRate()
	result.Plan = e.strategy.Plan(result.WinRate)
	dealer.StandLimit = result.Plan.StandLimit
	logger.Debug("Dealer plan",
		"winRate", result.WinRate,
		"standLimit", result.Plan.StandLimit,
		"cheat", result.Plan.Cheat)

	for dealer.WantsCard() {
		skipped := 0
		if result.Plan.Cheat {
			card, skipped, err = d.Cheat(dealer.Hand())
			result.Discarded += skipped
			if errors.Is(err, deck.ErrNoLowCard) || errors.Is(err, deck.ErrDiscardLimit) {
				logger.Warn("Rigged draw failed, dealer stands",
					"error", err,
					"discarded", skipped,
					"remaining", d.Remaining(),
					"total", dealer.Total())
				break
			}
		} else {
			card, err = d.Deal(dealer.Hand())
		}
		if err != nil {
			return nil, fmt.Errorf("deal to dealer: %w", err)
		}

		logger.Debug("Dealer drew",
			"card", card,
			"total", dealer.Total(),
			"discarded", skipped)
		e.publishHand(dealer, true, card, skipped)
	}

	if dealer.IsBusted() {
		return e.finish(start, result, human, dealer, PlayerWin, DealerBust), nil
	}
	return e.finish(start, result, human, dealer, human.Announce(), Comparison), nil
}

func (e *Engine) publishHand(p Player, dealer bool, last deck.Card, discarded int) {
	e.eventBus.Publish(NewHandEvent(p, dealer, last, discarded, e.clock.Now()))
}

// finish records the outcome and publishes the end of the round
func (e *Engine) finish(start time.Time, result *RoundResult, human *Human, dealer *Dealer, outcome Outcome, reason Reason) *RoundResult {
	result.Player = human.Name()
	result.Dealer = dealer.Name()
	result.Outcome = outcome
	result.Reason = reason
	result.PlayerCards = human.Hand().Cards()
	result.PlayerTotal = human.Total()
	result.DealerCards = dealer.Hand().Cards()
	result.DealerTotal = dealer.Total()
	result.Duration = e.clock.Since(start)

	e.stats.Record(statistics.Result{
		DealerWon:  outcome == DealerWin,
		Push:       outcome == Push,
		PlayerBust: reason == PlayerBust,
		DealerBust: reason == DealerBust,
		Cheated:    result.DealerPlayed && result.Plan.Cheat,
		Discarded:  result.Discarded,
	})

	e.logger.Debug("Round complete",
		"round", result.Round,
		"outcome", outcome,
		"reason", reason,
		"player", result.PlayerTotal,
		"dealer", result.DealerTotal,
		"winRate", e.stats.WinRate())

	e.eventBus.Publish(NewRoundEndEvent(*result, e.clock.Now()))
	return result
}
