package game

import "testing"

func TestAdvanceTurnSkipsFoldedAndAllIn(t *testing.T) {
	s := newTestSession()
	alice := activePlayer("Alice", 1000)
	bob := activePlayer("Bob", 1000)
	carol := activePlayer("Carol", 1000)
	g := seatPlayers(s, alice, bob, carol)

	bob.IsActive = false
	carol.IsAllIn = true

	g.advanceTurn()

	// Bob folded and Carol is all-in, so the scan wraps back to Alice
	if got := g.TurnOrder[g.TurnIndex]; got != "Alice" {
		t.Errorf("expected turn to land on Alice, got %s", got)
	}
}

func TestAdvanceTurnRotates(t *testing.T) {
	s := newTestSession()
	g := seatPlayers(s,
		activePlayer("Alice", 1000),
		activePlayer("Bob", 1000),
		activePlayer("Carol", 1000),
	)

	expected := []string{"Bob", "Carol", "Alice", "Bob"}
	for _, want := range expected {
		g.advanceTurn()
		if got := g.TurnOrder[g.TurnIndex]; got != want {
			t.Fatalf("expected turn %s, got %s", want, got)
		}
	}
}

func TestAdvanceTurnAllIneligibleTerminates(t *testing.T) {
	s := newTestSession()
	alice := activePlayer("Alice", 0)
	bob := activePlayer("Bob", 0)
	alice.IsAllIn = true
	bob.IsAllIn = true
	g := seatPlayers(s, alice, bob)
	g.TurnIndex = 1

	g.advanceTurn()

	if g.TurnIndex != 1 {
		t.Errorf("expected index unchanged at 1, got %d", g.TurnIndex)
	}
}

func TestAdvanceTurnRebuildsEmptyOrder(t *testing.T) {
	s := newTestSession()
	g := seatPlayers(s, activePlayer("Alice", 1000), activePlayer("Bob", 1000))
	g.TurnOrder = nil
	g.TurnIndex = 3

	g.advanceTurn()

	if len(g.TurnOrder) != 2 {
		t.Fatalf("expected rebuilt order of 2, got %d", len(g.TurnOrder))
	}
	if g.TurnIndex != 0 {
		t.Errorf("expected index reset to 0, got %d", g.TurnIndex)
	}
}

func TestRebuildTurnOrderIfStaleUsesActivePlayers(t *testing.T) {
	s := newTestSession()
	alice := activePlayer("Alice", 1000)
	bob := activePlayer("Bob", 1000)
	bob.IsActive = false
	g := seatPlayers(s, alice, bob)
	g.TurnOrder = nil

	g.rebuildTurnOrderIfStale()

	if len(g.TurnOrder) != 1 || g.TurnOrder[0] != "Alice" {
		t.Errorf("expected order [Alice], got %v", g.TurnOrder)
	}
}

func TestRemoveFromTurnOrderRenormalizesIndex(t *testing.T) {
	tests := []struct {
		name          string
		order         []string
		index         int
		remove        string
		expectedOrder []string
		expectedIndex int
	}{
		{
			name:          "remove at current index",
			order:         []string{"Alice", "Bob", "Carol"},
			index:         0,
			remove:        "Alice",
			expectedOrder: []string{"Bob", "Carol"},
			expectedIndex: 0,
		},
		{
			name:          "remove before current index",
			order:         []string{"Alice", "Bob", "Carol"},
			index:         2,
			remove:        "Alice",
			expectedOrder: []string{"Bob", "Carol"},
			expectedIndex: 0,
		},
		{
			name:          "remove after current index",
			order:         []string{"Alice", "Bob", "Carol"},
			index:         0,
			remove:        "Carol",
			expectedOrder: []string{"Alice", "Bob"},
			expectedIndex: 0,
		},
		{
			name:          "remove unknown name",
			order:         []string{"Alice", "Bob"},
			index:         1,
			remove:        "Mallory",
			expectedOrder: []string{"Alice", "Bob"},
			expectedIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame()
			g.TurnOrder = append([]string{}, tt.order...)
			g.TurnIndex = tt.index

			g.removeFromTurnOrder(tt.remove)

			if len(g.TurnOrder) != len(tt.expectedOrder) {
				t.Fatalf("expected order %v, got %v", tt.expectedOrder, g.TurnOrder)
			}
			for i := range tt.expectedOrder {
				if g.TurnOrder[i] != tt.expectedOrder[i] {
					t.Errorf("expected order %v, got %v", tt.expectedOrder, g.TurnOrder)
					break
				}
			}
			if g.TurnIndex != tt.expectedIndex {
				t.Errorf("expected index %d, got %d", tt.expectedIndex, g.TurnIndex)
			}
		})
	}
}
