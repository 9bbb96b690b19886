package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/openpoker/dealerd/internal/deck"
)

func newTestSession() *Session {
	return NewSession(DefaultConfig(), log.New(io.Discard))
}

// seatPlayers replaces the session's game with an active game holding
// the given players, in order, with a fresh turn order
func seatPlayers(s *Session, players ...*Player) *Game {
	g := newActiveGame()
	for _, p := range players {
		g.Players = append(g.Players, p)
		g.TurnOrder = append(g.TurnOrder, p.Name)
	}
	s.game = g
	return g
}

func activePlayer(name string, balance int, cards ...deck.Card) *Player {
	return &Player{
		Name:     name,
		Balance:  balance,
		IsActive: true,
		Cards:    cards,
	}
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}
