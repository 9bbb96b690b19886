package game

// rebuildTurnOrderIfStale resets the turn order to the names of all
// currently-active players, in list order, when the order is empty.
func (g *Game) rebuildTurnOrderIfStale() {
	if len(g.TurnOrder) > 0 {
		return
	}
	g.TurnOrder = nil
	for _, p := range g.activePlayers() {
		g.TurnOrder = append(g.TurnOrder, p.Name)
	}
	g.TurnIndex = 0
}

// advanceTurn moves the turn index forward to the next player who can
// act, skipping folded and all-in players. The scan is bounded by the
// order length: if it wraps back to the starting index without finding
// an eligible player it stops there, leaving the rotation effectively
// unchanged rather than looping or failing.
func (g *Game) advanceTurn() {
	eligible := g.eligiblePlayers()
	if len(eligible) == 0 {
		return
	}

	if len(g.TurnOrder) == 0 {
		for _, p := range eligible {
			g.TurnOrder = append(g.TurnOrder, p.Name)
		}
		g.TurnIndex = 0
		return
	}

	start := g.TurnIndex
	for i := 0; i < len(g.TurnOrder); i++ {
		g.TurnIndex = (g.TurnIndex + 1) % len(g.TurnOrder)
		if g.TurnIndex == start {
			break
		}
		next := g.findPlayer(g.TurnOrder[g.TurnIndex])
		if next != nil && next.CanAct() {
			break
		}
	}
}

// removeFromTurnOrder drops a player from the rotation and
// re-normalizes the turn index modulo the new, shorter length
func (g *Game) removeFromTurnOrder(name string) {
	idx := -1
	for i, n := range g.TurnOrder {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	g.TurnOrder = append(g.TurnOrder[:idx], g.TurnOrder[idx+1:]...)
	if idx <= g.TurnIndex && len(g.TurnOrder) > 0 {
		g.TurnIndex = g.TurnIndex % len(g.TurnOrder)
	}
}
