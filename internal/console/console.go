// Package console is the line-oriented front end: it prompts on a reader,
// and prints round events to a writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Prompt texts
const (
	DrawQuestion  = "Do you want to draw? (y/n): "
	AgainQuestion = "Would you like another round? (y/n): "
)

// Prompter asks the player questions. Implementations block until answered
// or until ctx is done, in which case they return ctx.Err().
type Prompter interface {
	// Confirm returns true only for answers starting with 'y'
	Confirm(ctx context.Context, question string) (bool, error)
	// AskPlayers returns the player count; invalid answers give 0
	AskPlayers(ctx context.Context, max int) (int, error)
}

// DrawDecider turns a Prompter into the draw decider for a human seat
func DrawDecider(ctx context.Context, p Prompter) game.Decider {
	return game.DeciderFunc(func(game.HandView) (bool, error) {
		return p.Confirm(ctx, DrawQuestion)
	})
}

// PlayersQuestion returns the player count prompt for max seats, e.g.
// "How many players would you like to have? (1/2/3): "
func PlayersQuestion(max int) string {
	options := make([]string, 0, max)
	for i := 1; i <= max; i++ {
		options = append(options, fmt.Sprint(i))
	}
	return fmt.Sprintf("How many players would you like to have? (%s): ", strings.Join(options, "/"))
}

// IsYes reports whether answer counts as "yes"
func IsYes(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && answer[0] == 'y'
}

// Console reads answers line by line and renders round events
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	styles    Styles
	formatter *game.EventFormatter

	startReader sync.Once
	lines       chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Option configures a Console
type Option func(*consoleOptions)

type consoleOptions struct {
	color    bool
	discards bool
	codes    bool
	profile  *termenv.Profile
}

// WithColor enables or disables styled output
func WithColor(enabled bool) Option {
	return func(o *consoleOptions) { o.color = enabled }
}

// WithDiscards mentions cards thrown away by rigged dealer draws
func WithDiscards(enabled bool) Option {
	return func(o *consoleOptions) { o.discards = enabled }
}

// WithCodes renders cards as value and suit letter ("10H") instead of faces
func WithCodes(enabled bool) Option {
	return func(o *consoleOptions) { o.codes = enabled }
}

// WithProfile forces the color profile instead of detecting it from the
// output, for writers that are not terminals themselves
func WithProfile(p termenv.Profile) Option {
	return func(o *consoleOptions) { o.profile = &p }
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	o := consoleOptions{color: true}
	for _, opt := range opts {
		opt(&o)
	}

	renderer := lipgloss.NewRenderer(out)
	switch {
	case !o.color:
		renderer.SetColorProfile(termenv.Ascii)
	case o.profile != nil:
		renderer.SetColorProfile(*o.profile)
	}
	styles := NewStyles(renderer)

	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		formatter: game.NewEventFormatter(game.FormattingOptions{
			Codes:        o.codes,
			ShowDiscards: o.discards,
			CardStyle: func(c deck.Card, text string) string {
				if c.IsRed() {
					return styles.RedCard.Render(text)
				}
				return styles.BlackCard.Render(text)
			},
		}),
		lines: make(chan lineResult),
	}
}

// Ask prints question and returns the next answer line. A final line
// without a newline is still returned; io.EOF is returned only when nothing
// was typed. Cancelling ctx unblocks a pending read and returns ctx.Err().
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(question))
	c.startReader.Do(func() { go c.readLines() })

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case r, ok := <-c.lines:
			if !ok {
				return "", io.EOF
			}
			if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
				return "", r.err
			}
			// Blank lines are skipped the way a stream extraction would
			if strings.TrimSpace(r.line) != "" || r.err != nil {
				return strings.TrimSpace(r.line), nil
			}
		}
	}
}

// readLines feeds c.lines one line at a time until the reader fails. A read
// blocked on input never holds up Ask once its context is done.
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		c.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Confirm implements Prompter
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// AskPlayers implements Prompter
func (c *Console) AskPlayers(ctx context.Context, max int) (int, error) {
	answer, err := c.Ask(ctx, PlayersQuestion(max))
	if err != nil {
		return 0, err
	}
	return game.ParsePlayerCount(answer), nil
}

// Banner prints the welcome title
func (c *Console) Banner() {
	fmt.Fprintf(c.out, "\n%s\n\n", c.styles.Title.Render("♠ ♥ Blackjack ♦ ♣"))
}

// Seat announces whose round is about to start
func (c *Console) Seat(n int) {
	fmt.Fprintf(c.out, "\nPlaying as player #%d\n\n", n)
}

// GameOver prints the farewell line
func (c *Console) GameOver() {
	fmt.Fprintf(c.out, "\n%s\n\n", c.styles.Info.Render("Game over!"))
}

// OnEvent implements game.EventSubscriber
func (c *Console) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.HandEvent:
		name := c.styles.Player
		if e.Dealer {
			name = c.styles.Dealer
		}
		line := c.formatter.FormatHand(e)
		if i := strings.Index(line, ":"); i > 0 {
			line = name.Render(line[:i]) + line[i:]
		}
		fmt.Fprintln(c.out, line)
	case game.RoundEndEvent:
		style := c.styles.Push
		switch e.Result.Outcome {
		case game.PlayerWin:
			style = c.styles.Win
		case game.DealerWin:
			style = c.styles.Loss
		}
		for _, line := range c.formatter.FormatRoundEnd(e) {
			fmt.Fprintln(c.out, style.Render(line))
		}
	}
}

// Run drives games until the player declines another round. End of input
// ends the game quietly; a cancelled ctx returns ctx.Err().
func (c *Console) Run(ctx context.Context, table *game.Table, prompter Prompter, maxPlayers int) error {
	c.Banner()
	defer c.GameOver()

	for {
		players, err := prompter.AskPlayers(ctx, maxPlayers)
		if err != nil {
			return quietEOF(err)
		}

		_, err = table.Play(ctx, players, func(seat int) game.Decider {
			c.Seat(seat)
			return DrawDecider(ctx, prompter)
		})
		if err != nil {
			return quietEOF(err)
		}

		fmt.Fprintln(c.out)
		again, err := prompter.Confirm(ctx, AgainQuestion)
		if err != nil {
			return quietEOF(err)
		}
		fmt.Fprint(c.out, "\n\n")
		if !again {
			return nil
		}
	}
}

func quietEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
