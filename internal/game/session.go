package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openpoker/dealerd/internal/deck"
)

// Config controls session policy
type Config struct {
	// StartingBalance is the chip count assigned on join
	StartingBalance int

	// DebugTopUp tops up a player's balance instead of rejecting an
	// over-bet. When false, over-bets fail with
	// ErrInsufficientBalance.
	DebugTopUp bool
}

// DefaultConfig returns the session defaults
func DefaultConfig() Config {
	return Config{
		StartingBalance: 1000,
		DebugTopUp:      true,
	}
}

// Session owns the single game aggregate and serializes every action
// against it behind one lock. It is the only way to reach the game:
// callers hold a Session handle rather than a global.
type Session struct {
	mu     sync.Mutex
	cfg    Config
	logger *log.Logger
	bus    EventBus
	game   *Game
}

// NewSession creates a session with no game yet; the first action
// creates one lazily.
func NewSession(cfg Config, logger *log.Logger) *Session {
	if cfg.StartingBalance <= 0 {
		cfg.StartingBalance = 1000
	}
	return &Session{
		cfg:    cfg,
		logger: logger.WithPrefix("session"),
		bus:    NewEventBus(),
	}
}

// EventBus returns the bus that session events are published on
func (s *Session) EventBus() EventBus {
	return s.bus
}

// ensureGame returns the current game, replacing it wholesale with a
// fresh one when none exists or the previous one has ended
func (s *Session) ensureGame() *Game {
	if s.game == nil || !s.game.IsActive {
		s.game = newGame()
	}
	return s.game
}

// Start begins a fresh game with a newly shuffled deck, replacing any
// previous game state
func (s *Session) Start() MessageResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game = newActiveGame()
	s.logger.Info("game started", "gameID", s.game.ID)
	s.bus.Publish(GameStartedEvent{GameID: s.game.ID, timestamp: time.Now()})

	return MessageResult{Message: "Game started successfully"}
}

// End deactivates the game and resets pot, side pots and per-player
// hand state. Player names and balances survive until the next game
// replaces the aggregate.
func (s *Session) End() MessageResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	g.IsActive = false
	g.Pot = 0
	g.SidePots = []SidePot{}
	for _, p := range g.Players {
		p.resetForNewHand()
	}

	s.logger.Info("game ended", "gameID", g.ID)
	s.bus.Publish(GameEndedEvent{GameID: g.ID, timestamp: time.Now()})

	return MessageResult{Message: "Game ended successfully"}
}

// Join admits a new player: activates a game if none is running, deals
// two cards from the shared deck and appends the player to the turn
// order. Names are unique, case-sensitively. There is no player cap.
func (s *Session) Join(name, hostURL string) (MessageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	if g.findPlayer(name) != nil {
		return MessageResult{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	if !g.IsActive {
		g.IsActive = true
		g.ensureDeck()
	}

	p := &Player{
		Name:     name,
		HostURL:  hostURL,
		Balance:  s.cfg.StartingBalance,
		IsActive: true,
	}

	g.ensureDeck()
	p.Cards = g.Deck.Draw(2)

	g.Players = append(g.Players, p)
	g.TurnOrder = append(g.TurnOrder, p.Name)

	s.logger.Info("player joined", "player", name, "balance", p.Balance, "players", len(g.Players))
	s.bus.Publish(PlayerJoinedEvent{Player: name, Balance: p.Balance, timestamp: time.Now()})

	return MessageResult{Message: fmt.Sprintf("Player %s joined the game successfully.", name)}, nil
}

// Status reports the full game state. An inactive game is activated
// as a side effect.
func (s *Session) Status() StatusView {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	if !g.IsActive {
		g.IsActive = true
	}
	return s.statusLocked(g)
}

func (s *Session) statusLocked(g *Game) StatusView {
	players := make([]PlayerStatus, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, PlayerStatus{
			Name:       p.Name,
			Balance:    p.Balance,
			IsActive:   p.IsActive,
			CurrentBet: p.CurrentBet,
			IsAllIn:    p.IsAllIn,
			HasActed:   p.HasActed,
		})
	}

	var currentTurn *string
	if g.IsActive {
		currentTurn = g.currentTurn()
	}

	return StatusView{
		IsActive:       g.IsActive,
		Pot:            g.Pot,
		CurrentTurn:    currentTurn,
		CurrentStage:   g.Stage.String(),
		CurrentBet:     g.CurrentBet,
		CommunityCards: append([]deck.Card{}, g.CommunityCards...),
		Players:        players,
		SidePots:       append([]SidePot{}, g.SidePots...),
	}
}

// ShowCards returns a player's hole cards, dealing them lazily when
// the player has none yet
func (s *Session) ShowCards(playerName string) (CardsView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	p := g.findPlayer(playerName)
	if p == nil {
		return CardsView{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerName)
	}

	if !g.IsActive {
		g.IsActive = true
	}

	if len(p.Cards) == 0 {
		g.ensureDeck()
		p.Cards = g.Deck.Draw(2)
	}

	return CardsView{Cards: append([]deck.Card{}, p.Cards...)}, nil
}

// CommunityCards returns the board, dealing all five cards on first
// request when none are out and a deck exists
func (s *Session) CommunityCards() BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	if len(g.CommunityCards) == 0 && g.Deck != nil && !g.Deck.IsEmpty() {
		g.CommunityCards = g.Deck.Draw(5)
	}

	return BoardView{
		Stage:          g.Stage.String(),
		CommunityCards: append([]deck.Card{}, g.CommunityCards...),
	}
}

// ShowPot reports the pot, the table's current call level and the
// side pot placeholders
func (s *Session) ShowPot() PotView {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	return PotView{
		Pot:        g.Pot,
		CurrentBet: g.CurrentBet,
		SidePots:   append([]SidePot{}, g.SidePots...),
	}
}

// IsYourTurn reports whether the named player is next to act. An
// inactive game or player is re-activated rather than rejected.
func (s *Session) IsYourTurn(playerName string) (TurnView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	view := TurnView{
		CurrentBet: g.CurrentBet,
		Stage:      g.Stage.String(),
	}

	if !g.IsActive {
		g.IsActive = true
		view.Reason = "Game was not active, now activated"
		return view, nil
	}

	p := g.findPlayer(playerName)
	if p == nil {
		return TurnView{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerName)
	}

	if !p.IsActive {
		p.IsActive = true
		view.Reason = "Player was not active, now activated"
		return view, nil
	}

	g.rebuildTurnOrderIfStale()

	view.Reason = "Waiting for other players"
	view.CurrentPlayer = g.currentTurn()
	if view.CurrentPlayer != nil && *view.CurrentPlayer == playerName {
		view.IsYourTurn = true
		view.Reason = "It's your turn to act"
	}

	return view, nil
}

// CompareCards resolves the showdown over the currently active
// players. Missing hole cards are dealt first so every contender can
// be scored.
func (s *Session) CompareCards() (CompareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	if !g.IsActive {
		g.IsActive = true
		return CompareResult{Message: "Game activated, please deal cards first"}, nil
	}

	for _, p := range g.Players {
		if len(p.Cards) == 0 {
			if g.Deck != nil && g.Deck.Remaining() >= 2 {
				p.Cards = g.Deck.Draw(2)
			} else {
				// Exhausted deck: hand out a fixed ace-high hand so
				// the comparison can still run
				p.Cards = []deck.Card{
					deck.NewCard(deck.Hearts, deck.Ace),
					deck.NewCard(deck.Hearts, deck.King),
				}
			}
		}
	}

	result := g.determineWinner()
	if result == nil {
		return CompareResult{}, ErrNoActivePlayers
	}

	s.logger.Info("showdown resolved", "winners", result.Winners, "handType", result.HandType)
	s.bus.Publish(HandEndedEvent{
		Winners:   result.Winners,
		HandType:  result.HandType,
		Pot:       g.Pot,
		timestamp: time.Now(),
	})

	if result.Split() {
		return CompareResult{
			Result:   "Split pot",
			Winners:  result.Winners,
			HandType: result.HandType,
		}, nil
	}
	return CompareResult{
		Result:   "Winner determined",
		Winner:   result.Winners[0],
		HandType: result.HandType,
	}, nil
}

// Snapshot copies the game aggregate for persistence
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGame()
	snap := Snapshot{
		GameID:         g.ID,
		IsActive:       g.IsActive,
		Pot:            g.Pot,
		CurrentBet:     g.CurrentBet,
		Stage:          g.Stage.String(),
		TurnIndex:      g.TurnIndex,
		TurnOrder:      append([]string{}, g.TurnOrder...),
		CommunityCards: append([]deck.Card{}, g.CommunityCards...),
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Name:       p.Name,
			Balance:    p.Balance,
			IsActive:   p.IsActive,
			CurrentBet: p.CurrentBet,
			IsAllIn:    p.IsAllIn,
			HasActed:   p.HasActed,
			Cards:      append([]deck.Card{}, p.Cards...),
		})
	}
	return snap
}
