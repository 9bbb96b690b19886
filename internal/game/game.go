package game

import (
	"github.com/google/uuid"
	"github.com/openpoker/dealerd/internal/deck"
)

// Stage represents the betting phase. It is stored and reported but
// not mechanically enforced by the betting engine.
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
)

func (s Stage) String() string {
	return [...]string{"pre_flop", "flop", "turn", "river"}[s]
}

// SidePot is a separately tracked wagering pool for all-in scenarios.
// It appears in responses but is never populated by the core.
type SidePot struct {
	Amount          int      `json:"amount"`
	EligiblePlayers []string `json:"eligible_players"`
}

// Game is the aggregate for a single hand session. One Game exists at
// a time; it is replaced wholesale on start/end rather than torn down.
type Game struct {
	ID             string
	IsActive       bool
	Players        []*Player
	Pot            int
	CurrentBet     int
	Stage          Stage
	CommunityCards []deck.Card
	TurnOrder      []string
	TurnIndex      int
	Deck           *deck.Deck
	SidePots       []SidePot
}

// newGame creates a fresh inactive game with no deck
func newGame() *Game {
	return &Game{
		ID:       uuid.NewString(),
		SidePots: []SidePot{},
	}
}

// newActiveGame creates a fresh active game with a shuffled deck
func newActiveGame() *Game {
	g := newGame()
	g.IsActive = true
	g.Deck = deck.New()
	return g
}

// findPlayer returns the player with the given name, or nil. Names are
// matched case-sensitively.
func (g *Game) findPlayer(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// activePlayers returns all players that have not folded
func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.Players {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// eligiblePlayers returns active players that are not all-in
func (g *Game) eligiblePlayers() []*Player {
	var eligible []*Player
	for _, p := range g.Players {
		if p.CanAct() {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// currentTurn returns the name of the player whose turn it is, or nil
// when the turn order is empty or the index is out of range
func (g *Game) currentTurn() *string {
	if len(g.TurnOrder) == 0 || g.TurnIndex >= len(g.TurnOrder) {
		return nil
	}
	name := g.TurnOrder[g.TurnIndex]
	return &name
}

// ensureDeck lazily creates the deck when it is absent or has too few
// cards to deal a hand
func (g *Game) ensureDeck() {
	if g.Deck == nil || g.Deck.Remaining() < 2 {
		g.Deck = deck.New()
	}
}
