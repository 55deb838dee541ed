package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeHand       EventType = "hand"
	EventTypeRoundEnd   EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once the round counters are bumped and the
// deck is ready
type RoundStartEvent struct {
	Round       int
	GamesPlayed int
	DealerWins  int
	timestamp   time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(round, gamesPlayed, dealerWins int, at time.Time) RoundStartEvent {
	return RoundStartEvent{
		Round:       round,
		GamesPlayed: gamesPlayed,
		DealerWins:  dealerWins,
		timestamp:   at,
	}
}

// HandEvent is published whenever a hand should be shown: after the opening
// deal and after every draw
type HandEvent struct {
	Holder    string
	Dealer    bool
	Cards     []deck.Card
	Total     int
	Last      deck.Card
	Discarded int // Cards the rigged pile threw away for this draw
	timestamp time.Time
}

func (e HandEvent) EventType() EventType { return EventTypeHand }
func (e HandEvent) Timestamp() time.Time { return e.timestamp }

// NewHandEvent snapshots p's hand
func NewHandEvent(p Player, dealer bool, last deck.Card, discarded int, at time.Time) HandEvent {
	return HandEvent{
		Holder:    p.Name(),
		Dealer:    dealer,
		Cards:     p.Hand().Cards(),
		Total:     p.Hand().Total(),
		Last:      last,
		Discarded: discarded,
		timestamp: at,
	}
}

// RoundEndEvent is published when a round resolves
type RoundEndEvent struct {
	Result    RoundResult
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(result RoundResult, at time.Time) RoundEndEvent {
	return RoundEndEvent{Result: result, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
