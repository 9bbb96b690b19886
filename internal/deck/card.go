package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the wire name of a suit (e.g., "Hearts")
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// ParseSuit parses a suit name, accepting any casing
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "hearts":
		return Hearts, nil
	case "diamonds":
		return Diamonds, nil
	case "clubs":
		return Clubs, nil
	case "spades":
		return Spades, nil
	default:
		return 0, fmt.Errorf("invalid suit: %q", s)
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the wire name of a rank ("2"-"10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank parses a rank name
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %q", s)
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Name returns the display name of a card (e.g., "A of Hearts")
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// String returns the display name of a card
func (c Card) String() string {
	return c.Name()
}

// Value returns the numeric value of the card for comparison.
// Aces are high (14).
func (c Card) Value() int {
	return int(c.Rank)
}

// cardJSON is the wire representation shared with the remote dealer
type cardJSON struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Name string `json:"name"`
}

// MarshalJSON encodes the card as {rank, suit, name}
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Rank: c.Rank.String(),
		Suit: c.Suit.String(),
		Name: c.Name(),
	})
}

// UnmarshalJSON decodes a card from its wire representation. The name
// field is derived from rank and suit and is ignored on input.
func (c *Card) UnmarshalJSON(data []byte) error {
	var wire cardJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	rank, err := ParseRank(wire.Rank)
	if err != nil {
		return err
	}
	suit, err := ParseSuit(wire.Suit)
	if err != nil {
		return err
	}

	c.Rank = rank
	c.Suit = suit
	return nil
}
