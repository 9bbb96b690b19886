package deck

import (
	"math/rand"
	"time"
)

// Deck represents an ordered sequence of undealt cards, consumed from
// the front.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck in uniformly shuffled order
func New() *Deck {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a shuffled deck using the provided random source
func NewWithRand(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}

	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})

	return d
}

// Draw removes and returns the first n cards from the front of the
// deck. If fewer than n remain it returns as many as available, so
// callers must check the length of the result.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n < 0 {
		n = 0
	}

	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
