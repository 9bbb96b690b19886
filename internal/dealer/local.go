package dealer

import (
	"context"

	"github.com/openpoker/dealerd/internal/game"
)

// Local serves dealer operations from the in-process game session
type Local struct {
	session *game.Session
}

// NewLocal wraps a session as a dealer authority
func NewLocal(session *game.Session) *Local {
	return &Local{session: session}
}

func (l *Local) CommunityCards(_ context.Context) (game.BoardView, error) {
	return l.session.CommunityCards(), nil
}

func (l *Local) ShowCards(_ context.Context, playerName string) (game.CardsView, error) {
	return l.session.ShowCards(playerName)
}

func (l *Local) PlaceBet(_ context.Context, playerName string, amount int) (game.BetResult, error) {
	return l.session.PlaceBet(playerName, amount)
}

func (l *Local) Fold(_ context.Context, playerName string) (game.FoldResult, error) {
	return l.session.Fold(playerName)
}
