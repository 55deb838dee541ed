package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceAddAndClear(t *testing.T) {
	var s Sequence
	s.Add(NewCard(King, Spades))
	s.Add(NewCard(Ace, Hearts))
	assert.Equal(t, 11, s.Total())
	assert.Equal(t, 2, s.Len())

	s.AddValue(10)
	assert.Equal(t, 21, s.Total())
	assert.Equal(t, 2, s.Len(), "AddValue must not add a card")

	s.Clear()
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Cards())
}

func TestSequenceCardsIsACopy(t *testing.T) {
	var s Sequence
	s.Add(NewCard(Two, Clubs))

	cards := s.Cards()
	cards[0] = NewCard(King, Clubs)

	assert.Equal(t, NewCard(Two, Clubs), s.Cards()[0])
	assert.Equal(t, 2, s.Total())
}
