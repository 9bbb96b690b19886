package game

import (
	"errors"
	"testing"
)

func TestJoinDealsTwoDisjointCards(t *testing.T) {
	s := newTestSession()

	if _, err := s.Join("Alice", "http://client-a"); err != nil {
		t.Fatalf("Join(Alice) error: %v", err)
	}
	if _, err := s.Join("Bob", "http://client-b"); err != nil {
		t.Fatalf("Join(Bob) error: %v", err)
	}

	alice := s.game.findPlayer("Alice")
	bob := s.game.findPlayer("Bob")

	if len(alice.Cards) != 2 || len(bob.Cards) != 2 {
		t.Fatalf("expected 2 cards each, got %d and %d", len(alice.Cards), len(bob.Cards))
	}
	for _, a := range alice.Cards {
		for _, b := range bob.Cards {
			if a == b {
				t.Errorf("card %s dealt into two hands", a)
			}
		}
	}

	if alice.Balance != 1000 {
		t.Errorf("expected starting balance 1000, got %d", alice.Balance)
	}
	if s.game.Deck.Remaining() != 48 {
		t.Errorf("expected 48 cards left in deck, got %d", s.game.Deck.Remaining())
	}
}

func TestJoinDuplicateNameFails(t *testing.T) {
	s := newTestSession()

	if _, err := s.Join("Alice", ""); err != nil {
		t.Fatalf("Join() error: %v", err)
	}

	_, err := s.Join("Alice", "")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// Name matching is case-sensitive
	if _, err := s.Join("alice", ""); err != nil {
		t.Errorf("lowercase variant should be a distinct player: %v", err)
	}
}

func TestJoinActivatesGameAndBuildsTurnOrder(t *testing.T) {
	s := newTestSession()

	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")

	g := s.game
	if !g.IsActive {
		t.Errorf("expected game active after join")
	}
	if len(g.TurnOrder) != 2 || g.TurnOrder[0] != "Alice" || g.TurnOrder[1] != "Bob" {
		t.Errorf("expected turn order [Alice Bob], got %v", g.TurnOrder)
	}
}

func TestJoinRecreatesExhaustedDeck(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	s.game.Deck.Draw(s.game.Deck.Remaining() - 1) // leave one card

	if _, err := s.Join("Bob", ""); err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if got := len(s.game.findPlayer("Bob").Cards); got != 2 {
		t.Errorf("expected 2 cards from recreated deck, got %d", got)
	}
}

func TestStartReplacesGame(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	oldID := s.game.ID

	result := s.Start()
	if result.Message == "" {
		t.Errorf("expected a message")
	}
	if s.game.ID == oldID {
		t.Errorf("expected a fresh game")
	}
	if len(s.game.Players) != 0 {
		t.Errorf("fresh game should have no players, got %d", len(s.game.Players))
	}
	if !s.game.IsActive {
		t.Errorf("started game should be active")
	}
	if s.game.Deck == nil || s.game.Deck.Remaining() != 52 {
		t.Errorf("started game should carry a full deck")
	}
}

func TestEndResetsState(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")
	_, _ = s.PlaceBet("Alice", 100)

	s.End()

	g := s.game
	if g.IsActive {
		t.Errorf("expected game inactive after end")
	}
	if g.Pot != 0 {
		t.Errorf("expected pot 0, got %d", g.Pot)
	}
	for _, p := range g.Players {
		if len(p.Cards) != 0 || p.CurrentBet != 0 || p.IsAllIn || p.HasActed {
			t.Errorf("player %s state not reset: %+v", p.Name, p)
		}
	}
}

func TestStatusActivatesAndReports(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")
	_, _ = s.PlaceBet("Alice", 50)

	status := s.Status()

	if !status.IsActive {
		t.Errorf("expected active game")
	}
	if status.Pot != 50 {
		t.Errorf("expected pot 50, got %d", status.Pot)
	}
	if status.CurrentBet != 50 {
		t.Errorf("expected current_bet 50, got %d", status.CurrentBet)
	}
	if status.CurrentStage != "pre_flop" {
		t.Errorf("expected stage pre_flop, got %s", status.CurrentStage)
	}
	if status.CurrentTurn == nil || *status.CurrentTurn != "Bob" {
		t.Errorf("expected current turn Bob, got %v", status.CurrentTurn)
	}
	if len(status.Players) != 2 {
		t.Errorf("expected 2 players, got %d", len(status.Players))
	}
	if status.SidePots == nil || len(status.SidePots) != 0 {
		t.Errorf("expected empty side pot placeholder, got %v", status.SidePots)
	}
}

func TestShowCardsDealsLazily(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	s.game.findPlayer("Alice").Cards = nil

	view, err := s.ShowCards("Alice")
	if err != nil {
		t.Fatalf("ShowCards() error: %v", err)
	}
	if len(view.Cards) != 2 {
		t.Errorf("expected 2 lazily dealt cards, got %d", len(view.Cards))
	}

	if _, err := s.ShowCards("Mallory"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestCommunityCardsDealsBoardOnce(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")

	board := s.CommunityCards()
	if len(board.CommunityCards) != 5 {
		t.Fatalf("expected 5 community cards, got %d", len(board.CommunityCards))
	}
	if board.Stage != "pre_flop" {
		t.Errorf("expected stage pre_flop, got %s", board.Stage)
	}

	again := s.CommunityCards()
	if len(again.CommunityCards) != 5 {
		t.Errorf("expected same board, got %d cards", len(again.CommunityCards))
	}
	for i := range board.CommunityCards {
		if board.CommunityCards[i] != again.CommunityCards[i] {
			t.Errorf("board changed between calls")
		}
	}
}

func TestCommunityCardsWithoutDeck(t *testing.T) {
	s := newTestSession()

	board := s.CommunityCards()
	if len(board.CommunityCards) != 0 {
		t.Errorf("expected no board without a deck, got %d", len(board.CommunityCards))
	}
}

func TestIsYourTurn(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")

	view, err := s.IsYourTurn("Alice")
	if err != nil {
		t.Fatalf("IsYourTurn() error: %v", err)
	}
	if !view.IsYourTurn {
		t.Errorf("expected Alice to act first: %+v", view)
	}

	view, err = s.IsYourTurn("Bob")
	if err != nil {
		t.Fatalf("IsYourTurn() error: %v", err)
	}
	if view.IsYourTurn {
		t.Errorf("expected Bob to wait")
	}
	if view.CurrentPlayer == nil || *view.CurrentPlayer != "Alice" {
		t.Errorf("expected current player Alice, got %v", view.CurrentPlayer)
	}

	if _, err := s.IsYourTurn("Mallory"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestIsYourTurnReactivatesInactiveGame(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	s.game.IsActive = false

	view, err := s.IsYourTurn("Alice")
	if err != nil {
		t.Fatalf("IsYourTurn() error: %v", err)
	}
	if view.IsYourTurn {
		t.Errorf("expected not-your-turn on reactivation")
	}
	if view.Reason == "" {
		t.Errorf("expected a reason")
	}
}

func TestCompareCardsActivatesInactiveGame(t *testing.T) {
	s := newTestSession()

	result, err := s.CompareCards()
	if err != nil {
		t.Fatalf("CompareCards() error: %v", err)
	}
	if result.Message != "Game activated, please deal cards first" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCompareCardsDealsMissingHands(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")
	s.game.findPlayer("Bob").Cards = nil

	result, err := s.CompareCards()
	if err != nil {
		t.Fatalf("CompareCards() error: %v", err)
	}
	if len(s.game.findPlayer("Bob").Cards) != 2 {
		t.Errorf("expected missing hand dealt before comparison")
	}
	if result.Result == "" {
		t.Errorf("expected a showdown result, got %+v", result)
	}
	if result.HandType != HandTypeHighCard {
		t.Errorf("expected high_card comparison, got %q", result.HandType)
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	s := newTestSession()
	_, _ = s.Join("Alice", "")
	_, _ = s.PlaceBet("Alice", 25)

	snap := s.Snapshot()

	if snap.GameID == "" {
		t.Errorf("expected a game ID")
	}
	if snap.Pot != 25 {
		t.Errorf("expected pot 25, got %d", snap.Pot)
	}
	if len(snap.Players) != 1 || snap.Players[0].Name != "Alice" {
		t.Fatalf("expected Alice in snapshot, got %+v", snap.Players)
	}
	if len(snap.Players[0].Cards) != 2 {
		t.Errorf("expected snapshot to carry hole cards")
	}

	// Mutating the snapshot must not touch live state
	snap.TurnOrder = append(snap.TurnOrder, "Mallory")
	if len(s.game.TurnOrder) != 1 {
		t.Errorf("snapshot aliases live turn order")
	}
}

type recordingSubscriber struct {
	events []GameEvent
}

func (r *recordingSubscriber) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func TestSessionPublishesEvents(t *testing.T) {
	s := newTestSession()
	rec := &recordingSubscriber{}
	s.EventBus().Subscribe(rec)

	s.Start()
	_, _ = s.Join("Alice", "")
	_, _ = s.Join("Bob", "")
	_, _ = s.PlaceBet("Alice", 50)
	_, _ = s.Fold("Bob")
	s.End()

	var types []EventType
	for _, e := range rec.events {
		types = append(types, e.EventType())
	}

	expected := []EventType{
		EventTypeGameStarted,
		EventTypePlayerJoined,
		EventTypePlayerJoined,
		EventTypeBetPlaced,
		EventTypePlayerFolded,
		EventTypeHandEnded,
		EventTypeGameEnded,
	}
	if len(types) != len(expected) {
		t.Fatalf("expected events %v, got %v", expected, types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("event %d: expected %s, got %s", i, expected[i], types[i])
		}
	}
}
