package deck

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New()

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Draw(52) {
		if seen[c] {
			t.Errorf("duplicate card drawn: %s", c)
		}
		seen[c] = true
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
	if !d.IsEmpty() {
		t.Errorf("deck should be empty after drawing 52, has %d", d.Remaining())
	}
}

func TestDrawShrinksDeck(t *testing.T) {
	d := New()

	hand := d.Draw(2)
	if len(hand) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(hand))
	}
	if d.Remaining() != 50 {
		t.Errorf("expected 50 remaining, got %d", d.Remaining())
	}

	board := d.Draw(5)
	if len(board) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(board))
	}
	if d.Remaining() != 45 {
		t.Errorf("expected 45 remaining, got %d", d.Remaining())
	}
}

func TestDrawMoreThanRemaining(t *testing.T) {
	d := New()
	d.Draw(51)

	got := d.Draw(5)
	if len(got) != 1 {
		t.Errorf("expected 1 card when only 1 remains, got %d", len(got))
	}
	if !d.IsEmpty() {
		t.Errorf("deck should be empty")
	}

	if got := d.Draw(3); len(got) != 0 {
		t.Errorf("expected no cards from empty deck, got %d", len(got))
	}
}

func TestDrawnHandsAreDisjoint(t *testing.T) {
	d := NewWithRand(rand.New(rand.NewSource(1)))

	alice := d.Draw(2)
	bob := d.Draw(2)

	for _, a := range alice {
		for _, b := range bob {
			if a == b {
				t.Errorf("card %s dealt to two hands", a)
			}
		}
	}
}

func TestShuffleIsSeedDependent(t *testing.T) {
	a := NewWithRand(rand.New(rand.NewSource(1))).Draw(52)
	b := NewWithRand(rand.New(rand.NewSource(2))).Draw(52)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("decks with different seeds produced identical order")
	}
}
