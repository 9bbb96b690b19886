package game

import (
	"fmt"
	"time"
)

// PlaceBet validates and applies a bet for the named player. The
// amount is deducted from the balance and added to the pot, and the
// player's committed bet is overwritten (not incremented) with the
// amount. A bet above the table's current call level raises it and
// forces every other active, non-all-in player to respond by clearing
// their acted flag. Validation happens before any field changes.
func (s *Session) PlaceBet(playerName string, amount int) (BetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	p := g.findPlayer(playerName)
	if p == nil {
		return BetResult{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerName)
	}
	if amount <= 0 {
		return BetResult{}, ErrInvalidAmount
	}
	if amount > p.Balance && !s.cfg.DebugTopUp {
		return BetResult{}, fmt.Errorf("%w: %s has %d, bet %d", ErrInsufficientBalance, playerName, p.Balance, amount)
	}

	if !g.IsActive {
		g.IsActive = true
	}
	if !p.IsActive {
		p.IsActive = true
	}
	g.rebuildTurnOrderIfStale()

	if amount > p.Balance {
		// Debug top-up policy: fund the player instead of rejecting
		topped := max(s.cfg.StartingBalance, amount*2)
		s.logger.Warn("topping up balance for over-bet", "player", playerName, "balance", p.Balance, "amount", amount, "newBalance", topped)
		p.Balance = topped
	}

	p.Balance -= amount
	p.CurrentBet = amount
	g.Pot += amount

	if amount > g.CurrentBet {
		g.CurrentBet = amount
		for _, other := range g.Players {
			if other.Name != p.Name && other.CanAct() {
				other.HasActed = false
			}
		}
	}

	p.HasActed = true
	if p.Balance == 0 {
		p.IsAllIn = true
	}

	g.advanceTurn()
	nextTurn := g.currentTurn()

	s.logger.Info("bet placed", "player", playerName, "amount", amount, "pot", g.Pot, "currentBet", g.CurrentBet)
	s.bus.Publish(BetPlacedEvent{
		Player:     playerName,
		Amount:     amount,
		Pot:        g.Pot,
		CurrentBet: g.CurrentBet,
		NextTurn:   nextTurn,
		timestamp:  time.Now(),
	})

	return BetResult{
		Message:       fmt.Sprintf("Player %s bet %d", playerName, amount),
		PlayerBalance: p.Balance,
		Pot:           g.Pot,
		CurrentBet:    g.CurrentBet,
		NextTurn:      nextTurn,
	}, nil
}

// Fold marks the player inactive and removes them from the turn
// rotation. When exactly one active player remains the hand ends
// immediately: the survivor collects the whole pot and no further turn
// advancement happens.
func (s *Session) Fold(playerName string) (FoldResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	p := g.findPlayer(playerName)
	if p == nil {
		return FoldResult{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerName)
	}

	if !g.IsActive {
		g.IsActive = true
	}

	p.HasActed = true
	p.IsActive = false

	if len(g.TurnOrder) == 0 {
		g.rebuildTurnOrderIfStale()
	} else {
		g.removeFromTurnOrder(playerName)
	}

	active := g.activePlayers()

	if len(active) == 1 {
		winner := active[0]
		pot := g.Pot
		winner.Balance += pot
		g.Pot = 0

		s.logger.Info("hand won by fold", "winner", winner.Name, "pot", pot)
		s.bus.Publish(PlayerFoldedEvent{Player: playerName, ActivePlayers: []string{winner.Name}, timestamp: time.Now()})
		s.bus.Publish(HandEndedEvent{
			Winners:   []string{winner.Name},
			HandType:  HandTypeDefaultWin,
			Pot:       pot,
			timestamp: time.Now(),
		})

		return FoldResult{
			Message:       fmt.Sprintf("Player %s folded. Player %s wins the pot!", playerName, winner.Name),
			Winner:        winner.Name,
			WinnerBalance: winner.Balance,
		}, nil
	}

	if len(active) > 0 {
		g.advanceTurn()
	}

	names := make([]string, 0, len(active))
	for _, a := range active {
		names = append(names, a.Name)
	}

	s.logger.Info("player folded", "player", playerName, "activePlayers", len(active))
	s.bus.Publish(PlayerFoldedEvent{Player: playerName, ActivePlayers: names, timestamp: time.Now()})

	return FoldResult{
		Message:       fmt.Sprintf("Player %s folded", playerName),
		ActivePlayers: names,
		NextTurn:      g.currentTurn(),
	}, nil
}
