package game

import "github.com/openpoker/dealerd/internal/deck"

// Player represents a seat in the game. Players are never removed:
// folding marks them inactive and betting to zero marks them all-in.
type Player struct {
	Name       string
	HostURL    string
	Balance    int
	Cards      []deck.Card
	CurrentBet int
	IsActive   bool
	IsAllIn    bool
	HasActed   bool
}

// CanAct returns true if the player participates in turn rotation
func (p *Player) CanAct() bool {
	return p.IsActive && !p.IsAllIn
}

// resetForNewHand clears the per-hand state, keeping name and balance
func (p *Player) resetForNewHand() {
	p.Cards = nil
	p.CurrentBet = 0
	p.IsAllIn = false
	p.HasActed = false
}
