package game

import "github.com/openpoker/dealerd/internal/deck"

// The types below are the wire shapes of the JSON contract. The remote
// dealer speaks the same shapes, so responses are interchangeable
// regardless of which authority produced them.

// PlayerStatus is the per-player slice of a game status response
type PlayerStatus struct {
	Name       string `json:"name"`
	Balance    int    `json:"balance"`
	IsActive   bool   `json:"is_active"`
	CurrentBet int    `json:"current_bet"`
	IsAllIn    bool   `json:"is_all_in"`
	HasActed   bool   `json:"has_acted"`
}

// StatusView is the game_status response
type StatusView struct {
	IsActive       bool           `json:"is_active"`
	Pot            int            `json:"pot"`
	CurrentTurn    *string        `json:"current_turn"`
	CurrentStage   string         `json:"current_stage"`
	CurrentBet     int            `json:"current_bet"`
	CommunityCards []deck.Card    `json:"community_cards"`
	Players        []PlayerStatus `json:"players"`
	SidePots       []SidePot      `json:"side_pots"`
}

// PotView is the show_pot response
type PotView struct {
	Pot        int       `json:"pot"`
	CurrentBet int       `json:"current_bet"`
	SidePots   []SidePot `json:"side_pots"`
}

// CardsView is the show_cards response
type CardsView struct {
	Cards []deck.Card `json:"cards"`
}

// BoardView is the community_cards response
type BoardView struct {
	Stage          string      `json:"stage"`
	CommunityCards []deck.Card `json:"community_cards"`
}

// TurnView is the is_your_turn response
type TurnView struct {
	IsYourTurn    bool    `json:"is_your_turn"`
	Reason        string  `json:"reason"`
	CurrentPlayer *string `json:"current_player"`
	CurrentBet    int     `json:"current_bet"`
	Stage         string  `json:"stage"`
}

// BetResult is the place_bet response
type BetResult struct {
	Message       string  `json:"message"`
	PlayerBalance int     `json:"player_balance"`
	Pot           int     `json:"pot"`
	CurrentBet    int     `json:"current_bet"`
	NextTurn      *string `json:"next_turn"`
}

// FoldResult is the fold response. When the fold leaves a single
// survivor the winner fields are set; otherwise the remaining active
// players and the next turn are reported.
type FoldResult struct {
	Message       string   `json:"message"`
	Winner        string   `json:"winner,omitempty"`
	WinnerBalance int      `json:"winner_balance,omitempty"`
	ActivePlayers []string `json:"active_players,omitempty"`
	NextTurn      *string  `json:"next_turn,omitempty"`
}

// CompareResult is the compare_cards response
type CompareResult struct {
	Message  string   `json:"message,omitempty"`
	Result   string   `json:"result,omitempty"`
	Winner   string   `json:"winner,omitempty"`
	Winners  []string `json:"winners,omitempty"`
	HandType string   `json:"hand_type,omitempty"`
}

// MessageResult is the response of start_game, join_game and end_game
type MessageResult struct {
	Message string `json:"message"`
}

// PlayerSnapshot is the persisted view of a player
type PlayerSnapshot struct {
	Name       string
	Balance    int
	IsActive   bool
	CurrentBet int
	IsAllIn    bool
	HasActed   bool
	Cards      []deck.Card
}

// Snapshot is a point-in-time copy of the game aggregate, taken under
// the session lock and safe to hand to persistence
type Snapshot struct {
	GameID         string
	IsActive       bool
	Pot            int
	CurrentBet     int
	Stage          string
	TurnIndex      int
	TurnOrder      []string
	CommunityCards []deck.Card
	Players        []PlayerSnapshot
}
