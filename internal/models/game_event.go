package models

// Game lifecycle operations published as events.
const (
	GameCreated = "created"
	GameUpdated = "updated"
	GameDeleted = "deleted"
)

// GameEvent is published to Kafka after a game is mutated.
type GameEvent struct {
	EventID   string `json:"event_id"`
	GameID    string `json:"game_id"`
	Operation string `json:"operation"`
	Timestamp int64  `json:"timestamp"`
}
