// Package dealer implements the dual-authority pattern for game
// actions: a remote dealer service is tried first over HTTP, and the
// local game core answers whenever the remote is unreachable. Both
// sides speak the same JSON contract, so callers cannot tell which
// authority produced a response.
package dealer

import (
	"context"
	"errors"

	"github.com/openpoker/dealerd/internal/game"
)

// ErrUnavailable marks a remote dealer failure: unreachable host,
// non-success status, malformed body, or an error-bearing response.
// It is always recovered by falling back to the local authority and
// never reaches the end client.
var ErrUnavailable = errors.New("dealer unavailable")

// Authority answers the game actions that may be delegated to the
// remote dealer
type Authority interface {
	CommunityCards(ctx context.Context) (game.BoardView, error)
	ShowCards(ctx context.Context, playerName string) (game.CardsView, error)
	PlaceBet(ctx context.Context, playerName string, amount int) (game.BetResult, error)
	Fold(ctx context.Context, playerName string) (game.FoldResult, error)
}
