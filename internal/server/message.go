package server

import (
	"encoding/json"
	"time"

	"github.com/openpoker/dealerd/internal/game"
)

// Message is the envelope for every frame pushed over /ws
type Message struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType string, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Event payloads pushed to observers

type GameStartedData struct {
	GameID string `json:"game_id"`
}

type GameEndedData struct {
	GameID string `json:"game_id"`
}

type PlayerJoinedData struct {
	Player  string `json:"player"`
	Balance int    `json:"balance"`
}

type BetPlacedData struct {
	Player     string  `json:"player"`
	Amount     int     `json:"amount"`
	Pot        int     `json:"pot"`
	CurrentBet int     `json:"current_bet"`
	NextTurn   *string `json:"next_turn"`
}

type PlayerFoldedData struct {
	Player        string   `json:"player"`
	ActivePlayers []string `json:"active_players"`
}

type HandEndedData struct {
	Winners  []string `json:"winners"`
	HandType string   `json:"hand_type"`
	Pot      int      `json:"pot"`
}

// messageFromEvent converts a game event to its wire envelope
func messageFromEvent(event game.GameEvent) (*Message, error) {
	var data interface{}

	switch e := event.(type) {
	case game.GameStartedEvent:
		data = GameStartedData{GameID: e.GameID}
	case game.GameEndedEvent:
		data = GameEndedData{GameID: e.GameID}
	case game.PlayerJoinedEvent:
		data = PlayerJoinedData{Player: e.Player, Balance: e.Balance}
	case game.BetPlacedEvent:
		data = BetPlacedData{
			Player:     e.Player,
			Amount:     e.Amount,
			Pot:        e.Pot,
			CurrentBet: e.CurrentBet,
			NextTurn:   e.NextTurn,
		}
	case game.PlayerFoldedEvent:
		data = PlayerFoldedData{Player: e.Player, ActivePlayers: e.ActivePlayers}
	case game.HandEndedEvent:
		data = HandEndedData{Winners: e.Winners, HandType: e.HandType, Pot: e.Pot}
	default:
		data = struct{}{}
	}

	msg, err := NewMessage(event.EventType().String(), data)
	if err != nil {
		return nil, err
	}
	msg.Timestamp = event.Timestamp()
	return msg, nil
}
