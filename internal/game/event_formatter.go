package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// FormattingOptions controls how events are rendered as text
type FormattingOptions struct {
	Codes        bool                           // Render cards as value+suit letter ("10H") instead of faces ("K♥")
	ShowDiscards bool                           // Mention cards a rigged draw threw away
	CardStyle    func(deck.Card, string) string // Optional decoration of each card's rendered text
}

// EventFormatter turns round events into the lines shown to the player
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// FormatHand renders a hand as "Holder: cards [total]"
func (ef *EventFormatter) FormatHand(event HandEvent) string {
	line := fmt.Sprintf("%s: %s [%d]", event.Holder, ef.FormatCards(event.Cards), event.Total)
	if ef.opts.ShowDiscards && event.Discarded > 0 {
		line += fmt.Sprintf(" (%d discarded)", event.Discarded)
	}
	return line
}

// FormatCards renders cards separated by spaces
func (ef *EventFormatter) FormatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, ef.formatCard(c))
	}
	return strings.Join(parts, " ")
}

func (ef *EventFormatter) formatCard(c deck.Card) string {
	text := c.String()
	if ef.opts.Codes {
		text = c.Code()
	}
	if ef.opts.CardStyle != nil {
		return ef.opts.CardStyle(c, text)
	}
	return text
}

// FormatRoundEnd renders the announcement lines for a resolved round
func (ef *EventFormatter) FormatRoundEnd(event RoundEndEvent) []string {
	r := event.Result
	switch {
	case r.Reason == PlayerBust:
		return []string{r.Player + " busts.", r.Dealer + " wins."}
	case r.Reason == DealerBust:
		return []string{r.Dealer + " busts.", r.Player + " wins."}
	case r.Outcome == Push:
		return []string{"Push: No one wins."}
	case r.Outcome == PlayerWin:
		return []string{r.Player + " wins."}
	default:
		return []string{r.Dealer + " wins."}
	}
}
