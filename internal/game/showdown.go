package game

// Hand type names reported at showdown
const (
	HandTypeDefaultWin = "default_win"
	HandTypeHighCard   = "high_card"
)

// ShowdownResult identifies the winning player(s) of a hand. More than
// one winner means a split pot; dividing the pot between them is not
// implemented.
type ShowdownResult struct {
	Winners  []string
	HandType string
	Score    int
}

// Split returns true when the pot is shared between tied winners
func (r *ShowdownResult) Split() bool {
	return len(r.Winners) > 1
}

// determineWinner resolves the showdown among active players. A single
// active player wins by default without hand comparison. Otherwise
// each active player holding at least two cards is scored by their
// highest card value (ace high); players with fewer than two cards are
// excluded from comparison entirely. Returns nil when nobody can be
// scored.
func (g *Game) determineWinner() *ShowdownResult {
	active := g.activePlayers()
	if len(active) == 0 {
		return nil
	}

	if len(active) == 1 {
		return &ShowdownResult{
			Winners:  []string{active[0].Name},
			HandType: HandTypeDefaultWin,
		}
	}

	type entry struct {
		name  string
		score int
	}
	var scored []entry

	for _, p := range active {
		if len(p.Cards) < 2 {
			continue
		}
		best := 0
		for _, c := range p.Cards {
			if c.Value() > best {
				best = c.Value()
			}
		}
		scored = append(scored, entry{name: p.Name, score: best})
	}

	if len(scored) == 0 {
		return nil
	}

	maxScore := 0
	for _, e := range scored {
		if e.score > maxScore {
			maxScore = e.score
		}
	}

	result := &ShowdownResult{HandType: HandTypeHighCard, Score: maxScore}
	for _, e := range scored {
		if e.score == maxScore {
			result.Winners = append(result.Winners, e.name)
		}
	}
	return result
}
