package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// ScriptedDecider answers draw decisions from a fixed script and records the
// views it was shown. Once the script runs out it stands.
type ScriptedDecider struct {
	answers []bool
	Views   []HandView
}

// NewScriptedDecider creates a decider that replays answers in order
func NewScriptedDecider(answers ...bool) *ScriptedDecider {
	return &ScriptedDecider{answers: answers}
}

// DecideDraw implements Decider
func (s *ScriptedDecider) DecideDraw(view HandView) (bool, error) {
	s.Views = append(s.Views, view)
	if len(s.answers) == 0 {
		return false, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// EventRecorder captures every event published on a bus
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent implements EventSubscriber
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// Hands returns the recorded hand events
func (r *EventRecorder) Hands() []HandEvent {
	var hands []HandEvent
	for _, e := range r.Events {
		if h, ok := e.(HandEvent); ok {
			hands = append(hands, h)
		}
	}
	return hands
}

// NewTestEngine creates an engine with a discarded logger, a fixed shuffle
// seed and a session seeded with games/wins
func NewTestEngine(games, wins int, opts ...EngineOption) *Engine {
	stats := statistics.NewSeededSession(games, wins)
	return NewEngine(stats, randutil.New(42), log.New(io.Discard), opts...)
}
