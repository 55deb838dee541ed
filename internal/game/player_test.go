package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func dealAll(t *testing.T, p Player, cards string) {
	t.Helper()
	d := deck.NewStacked(deck.MustParseCards(cards))
	for d.Remaining() > 0 {
		_, err := d.Deal(p.Hand())
		require.NoError(t, err)
	}
}

func TestDealerShouldDraw(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		limit int
		want  bool
	}{
		{name: "below limit", cards: "Tc 5d", limit: 16, want: true},
		{name: "at limit", cards: "Tc 6d", limit: 16, want: true},
		{name: "above limit", cards: "Tc 7d", limit: 16, want: false},
		{name: "aggressive at 18", cards: "Tc 8d", limit: 18, want: true},
		{name: "aggressive above", cards: "Tc 9d", limit: 18, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealer("Casino")
			d.StandLimit = tt.limit
			dealAll(t, d, tt.cards)

			assert.Equal(t, tt.want, d.WantsCard())

			got, err := d.ShouldDraw()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ShouldDraw agrees with WantsCard")
		})
	}
}

func TestNewDealerDefaults(t *testing.T) {
	d := NewDealer("Casino")
	assert.Equal(t, DefaultStandLimit, d.StandLimit)
	assert.Equal(t, "Casino", d.Name())
	assert.Equal(t, 0, d.Total())
}

func TestIsBusted(t *testing.T) {
	d := NewDealer("Casino")
	dealAll(t, d, "Tc Td")
	assert.False(t, d.IsBusted())
	dealAll(t, d, "As")
	assert.False(t, d.IsBusted(), "21 is not a bust")
	dealAll(t, d, "2s")
	assert.True(t, d.IsBusted())
}

func TestHumanAnnounce(t *testing.T) {
	tests := []struct {
		name   string
		human  string
		dealer string
		want   Outcome
	}{
		{name: "push", human: "Tc Qd", dealer: "Kc Th", want: Push},
		{name: "player higher", human: "Tc Qd", dealer: "Kc 7h", want: PlayerWin},
		{name: "dealer higher", human: "Tc 7d", dealer: "Kc 9h", want: DealerWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealer := NewDealer("Casino")
			human := NewHuman("Player", dealer, NeverDraw())
			dealAll(t, human, tt.human)
			dealAll(t, dealer, tt.dealer)
			assert.Equal(t, tt.want, human.Announce())
		})
	}
}

func TestHumanShouldDrawShowsBothHands(t *testing.T) {
	dealer := NewDealer("Casino")
	decider := NewScriptedDecider(true)
	human := NewHuman("Player", dealer, decider)
	dealAll(t, dealer, "9c")
	dealAll(t, human, "5h 6d")

	draw, err := human.ShouldDraw()
	require.NoError(t, err)
	assert.True(t, draw)

	require.Len(t, decider.Views, 1)
	view := decider.Views[0]
	assert.Equal(t, 11, view.Total)
	assert.Equal(t, deck.MustParseCards("5h 6d"), view.Cards)
	assert.Equal(t, 9, view.DealerTotal)
	assert.Equal(t, deck.MustParseCards("9c"), view.DealerCards)
}

func TestStandOn(t *testing.T) {
	decider := StandOn(17)

	draw, err := decider.DecideDraw(HandView{Total: 16})
	require.NoError(t, err)
	assert.True(t, draw)

	draw, err = decider.DecideDraw(HandView{Total: 17})
	require.NoError(t, err)
	assert.False(t, draw)
}
