package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
)

// ErrQuit is returned by prompts once the player quits the UI. It wraps
// io.EOF so callers can treat it as the end of input.
var ErrQuit = fmt.Errorf("player quit: %w", io.EOF)

// Prompter runs the bubbletea program and implements console.Prompter,
// io.Writer (for rendered game text) and game.EventSubscriber (for the
// sidebar).
type Prompter struct {
	model   *Model
	program *tea.Program
	send    func(tea.Msg)
	done    chan struct{}
	err     error

	mu      sync.Mutex
	partial string
}

var (
	_ console.Prompter     = (*Prompter)(nil)
	_ game.EventSubscriber = (*Prompter)(nil)
	_ io.Writer            = (*Prompter)(nil)
)

// NewPrompter creates a full-screen prompter. Call Start before asking.
func NewPrompter(logger *log.Logger, opts ...tea.ProgramOption) *Prompter {
	model := NewModel(logger)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(model, opts...)
	return &Prompter{
		model:   model,
		program: program,
		send:    program.Send,
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background
func (p *Prompter) Start() {
	go func() {
		defer close(p.done)
		if _, err := p.program.Run(); err != nil {
			p.err = fmt.Errorf("running TUI: %w", err)
		}
	}()
}

// Close stops the program and waits for the terminal to be restored
func (p *Prompter) Close() error {
	p.send(quitMsg{})
	<-p.done
	return p.err
}

// Confirm implements console.Prompter
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	text, err := p.ask(ctx, question)
	if err != nil {
		return false, err
	}
	return console.IsYes(text), nil
}

// AskPlayers implements console.Prompter
func (p *Prompter) AskPlayers(ctx context.Context, max int) (int, error) {
	text, err := p.ask(ctx, console.PlayersQuestion(max))
	if err != nil {
		return 0, err
	}
	return game.ParsePlayerCount(text), nil
}

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	p.send(askMsg{question: question})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-p.model.answers:
		if a.quit {
			return "", ErrQuit
		}
		return a.text, nil
	case <-p.done:
		return "", ErrQuit
	}
}

// OnEvent implements game.EventSubscriber
func (p *Prompter) OnEvent(event game.GameEvent) {
	p.send(eventMsg{event: event})
}

// Write appends complete lines of b to the game log. A trailing partial
// line is held until its newline arrives.
func (p *Prompter) Write(b []byte) (int, error) {
	p.mu.Lock()
	text := p.partial + string(b)
	lines := strings.Split(text, "\n")
	p.partial = lines[len(lines)-1]
	lines = lines[:len(lines)-1]
	p.mu.Unlock()

	if len(lines) > 0 {
		p.send(logMsg{lines: lines})
	}
	return len(b), nil
}
