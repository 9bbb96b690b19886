package game

import "time"

// EventType represents a game event type
type EventType string

const (
	EventTypeGameStarted  EventType = "game_started"
	EventTypeGameEnded    EventType = "game_ended"
	EventTypePlayerJoined EventType = "player_joined"
	EventTypeBetPlaced    EventType = "bet_placed"
	EventTypePlayerFolded EventType = "player_folded"
	EventTypeHandEnded    EventType = "hand_ended"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event published by the session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartedEvent is published when a fresh game is started
type GameStartedEvent struct {
	GameID    string
	timestamp time.Time
}

func (e GameStartedEvent) EventType() EventType { return EventTypeGameStarted }
func (e GameStartedEvent) Timestamp() time.Time { return e.timestamp }

// GameEndedEvent is published when the game is explicitly ended
type GameEndedEvent struct {
	GameID    string
	timestamp time.Time
}

func (e GameEndedEvent) EventType() EventType { return EventTypeGameEnded }
func (e GameEndedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerJoinedEvent is published when a player is admitted
type PlayerJoinedEvent struct {
	Player    string
	Balance   int
	timestamp time.Time
}

func (e PlayerJoinedEvent) EventType() EventType { return EventTypePlayerJoined }
func (e PlayerJoinedEvent) Timestamp() time.Time { return e.timestamp }

// BetPlacedEvent is published after a bet is applied
type BetPlacedEvent struct {
	Player     string
	Amount     int
	Pot        int
	CurrentBet int
	NextTurn   *string
	timestamp  time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerFoldedEvent is published after a fold is applied
type PlayerFoldedEvent struct {
	Player        string
	ActivePlayers []string
	timestamp     time.Time
}

func (e PlayerFoldedEvent) EventType() EventType { return EventTypePlayerFolded }
func (e PlayerFoldedEvent) Timestamp() time.Time { return e.timestamp }

// HandEndedEvent is published when a hand resolves, either because
// folds left a single survivor or at showdown
type HandEndedEvent struct {
	Winners   []string
	HandType  string
	Pot       int
	timestamp time.Time
}

func (e HandEndedEvent) EventType() EventType { return EventTypeHandEnded }
func (e HandEndedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, s := range bus.subscribers {
		if s == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
