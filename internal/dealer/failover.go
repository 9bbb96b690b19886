package dealer

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/openpoker/dealerd/internal/game"
)

// Failover tries the remote dealer first and falls back to the local
// session when the dealer is unreachable or reports a failure. With no
// remote configured every call goes straight to the local authority.
type Failover struct {
	remote Authority
	local  Authority
	logger *log.Logger
}

// NewFailover builds a delegating authority. remote may be nil.
func NewFailover(remote, local Authority, logger *log.Logger) *Failover {
	return &Failover{
		remote: remote,
		local:  local,
		logger: logger.WithPrefix("dealer"),
	}
}

func fallback[T any](ctx context.Context, f *Failover, op string, remote, local func(ctx context.Context) (T, error)) (T, error) {
	if f.remote != nil {
		out, err := remote(ctx)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrUnavailable) {
			return out, err
		}
		f.logger.Warn("Dealer unavailable, handling locally", "op", op, "err", err)
	}
	return local(ctx)
}

func (f *Failover) CommunityCards(ctx context.Context) (game.BoardView, error) {
	return fallback(ctx, f, "community_cards",
		func(ctx context.Context) (game.BoardView, error) { return f.remote.CommunityCards(ctx) },
		func(ctx context.Context) (game.BoardView, error) { return f.local.CommunityCards(ctx) },
	)
}

func (f *Failover) ShowCards(ctx context.Context, playerName string) (game.CardsView, error) {
	return fallback(ctx, f, "show_cards",
		func(ctx context.Context) (game.CardsView, error) { return f.remote.ShowCards(ctx, playerName) },
		func(ctx context.Context) (game.CardsView, error) { return f.local.ShowCards(ctx, playerName) },
	)
}

func (f *Failover) PlaceBet(ctx context.Context, playerName string, amount int) (game.BetResult, error) {
	return fallback(ctx, f, "place_bet",
		func(ctx context.Context) (game.BetResult, error) { return f.remote.PlaceBet(ctx, playerName, amount) },
		func(ctx context.Context) (game.BetResult, error) { return f.local.PlaceBet(ctx, playerName, amount) },
	)
}

func (f *Failover) Fold(ctx context.Context, playerName string) (game.FoldResult, error) {
	return fallback(ctx, f, "fold",
		func(ctx context.Context) (game.FoldResult, error) { return f.remote.Fold(ctx, playerName) },
		func(ctx context.Context) (game.FoldResult, error) { return f.local.Fold(ctx, playerName) },
	)
}
