package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

// newScriptedPrompter drives the model on the calling goroutine and answers
// each question from script as if typed and submitted
func newScriptedPrompter(script ...string) (*Prompter, *Model) {
	model := NewModel(quietLogger())
	p := &Prompter{model: model, done: make(chan struct{})}
	p.send = func(msg tea.Msg) {
		model.Update(msg)
		if _, ok := msg.(askMsg); ok && len(script) > 0 {
			if script[0] == "<quit>" {
				model.Update(esc)
			} else {
				model.input.SetValue(script[0])
				model.Update(enter)
			}
			script = script[1:]
		}
	}
	return p, model
}

func TestModel_AskAndAnswer(t *testing.T) {
	m := NewModel(quietLogger())

	m.Update(askMsg{question: console.DrawQuestion})
	assert.Equal(t, console.DrawQuestion, m.Question())

	m.input.SetValue(" y ")
	m.Update(enter)

	select {
	case a := <-m.answers:
		assert.Equal(t, "y", a.text)
		assert.False(t, a.quit)
	default:
		t.Fatal("expected an answer")
	}
	assert.Empty(t, m.Question())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, []string{InfoStyle.Render(console.DrawQuestion + "y")}, m.GameLog())
}

func TestModel_EnterWithoutQuestion(t *testing.T) {
	m := NewModel(quietLogger())

	m.input.SetValue("y")
	m.Update(enter)

	assert.Empty(t, m.answers)
	assert.Empty(t, m.GameLog())
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(quietLogger())

	_, cmd := m.Update(esc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())

	a := <-m.answers
	assert.True(t, a.quit)
}

func TestModel_FocusSwitch(t *testing.T) {
	m := NewModel(quietLogger())
	m.Update(askMsg{question: "Q? "})

	m.Update(tab)
	assert.True(t, m.logFocused)
	assert.False(t, m.input.Focused())

	m.Update(enter)
	assert.Empty(t, m.answers, "enter does nothing while the log is focused")

	m.Update(tab)
	assert.False(t, m.logFocused)
	assert.True(t, m.input.Focused())
}

func TestModel_Events(t *testing.T) {
	m := NewModel(quietLogger())

	m.Update(eventMsg{event: game.NewRoundStartEvent(3, 12, 6, time.Time{})})
	assert.Equal(t, sessionInfo{round: 3, gamesPlayed: 12, dealerWins: 6}, m.session)

	m.Update(eventMsg{event: game.NewRoundEndEvent(game.RoundResult{Outcome: game.DealerWin}, time.Time{})})
	assert.Equal(t, 7, m.session.dealerWins)
	assert.Equal(t, 12, m.session.gamesPlayed)
	assert.Equal(t, "dealer_win", m.session.lastOutcome)
}

func TestModel_View(t *testing.T) {
	m := NewModel(quietLogger())
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(logMsg{lines: []string{"Casino: K♥ [10]"}})
	m.Update(askMsg{question: console.DrawQuestion})

	view := m.View()
	assert.Contains(t, view, "Casino: K♥ [10]")
	assert.Contains(t, view, "Do you want to draw?")
	assert.Contains(t, view, "Blackjack")
	assert.Contains(t, view, "ctrl+c quit")
}

func TestPrompter_Write(t *testing.T) {
	p, m := newScriptedPrompter()

	fmt.Fprint(p, "Player: A♠ ")
	assert.Empty(t, m.GameLog(), "partial lines are held")

	fmt.Fprint(p, "9♦ [20]\nCasino wins.\n")
	assert.Equal(t, []string{"Player: A♠ 9♦ [20]", "Casino wins."}, m.GameLog())
}

func TestPrompter_Questions(t *testing.T) {
	p, _ := newScriptedPrompter("2", "y", "nope", "<quit>")

	n, err := p.AskPlayers(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	yes, err := p.Confirm(context.Background(), console.DrawQuestion)
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = p.Confirm(context.Background(), console.AgainQuestion)
	require.NoError(t, err)
	assert.False(t, yes)

	_, err = p.Confirm(context.Background(), console.DrawQuestion)
	assert.ErrorIs(t, err, ErrQuit)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_ProgramExited(t *testing.T) {
	p, _ := newScriptedPrompter()
	close(p.done)

	_, err := p.AskPlayers(context.Background(), 3)
	assert.ErrorIs(t, err, ErrQuit)
}

func TestPrompter_Cancelled(t *testing.T) {
	p, m := newScriptedPrompter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Confirm(ctx, console.DrawQuestion)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, console.DrawQuestion, m.Question())
}

func TestKeyMapHelp(t *testing.T) {
	k := defaultKeyMap()
	assert.Equal(t, "tab switch pane • enter answer • ctrl+c quit", k.help(false))
	assert.True(t, strings.HasPrefix(k.help(true), "↑ scroll up"))
}
