package deck

// Receiver is anything a deck can deal into
type Receiver interface {
	Add(c Card)
	AddValue(delta int)
	Total() int
}

// Sequence is an ordered run of cards with a running blackjack total.
// The total includes retroactive Ace upgrades applied through AddValue, so it
// is not always the plain sum of card values.
type Sequence struct {
	cards []Card
	total int
}

// Add appends a card and adds its base value to the total
func (s *Sequence) Add(c Card) {
	s.cards = append(s.cards, c)
	s.total += c.Value()
}

// AddValue adjusts the total without adding a card
func (s *Sequence) AddValue(delta int) {
	s.total += delta
}

// Clear empties the sequence and resets the total
func (s *Sequence) Clear() {
	s.cards = s.cards[:0]
	s.total = 0
}

// Total returns the running total
func (s *Sequence) Total() int {
	return s.total
}

// Len returns the number of cards held
func (s *Sequence) Len() int {
	return len(s.cards)
}

// Cards returns a copy of the held cards in the order they were added
func (s *Sequence) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// last returns the most recently added card
func (s *Sequence) last() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[len(s.cards)-1], true
}

// pop removes the most recently added card and subtracts its base value
func (s *Sequence) pop() (Card, bool) {
	c, ok := s.last()
	if !ok {
		return Card{}, false
	}
	s.cards = s.cards[:len(s.cards)-1]
	s.total -= c.Value()
	return c, true
}
