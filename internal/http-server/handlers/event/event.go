package event

import (
	"github.com/google/uuid"
)

// Event names pushed on a session channel.
const (
	ChipPlaced     = "chip-placed"
	BoardCleared   = "board-cleared"
	RoundSettled   = "round-settled"
	CardRevealed   = "card-revealed"
	RoundCompleted = "round-completed"
	SessionReset   = "session-reset"
)

type Message struct {
	Channel string                 `json:"channel"`
	Event   string                 `json:"event"`
	Data    map[string]interface{} `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Publisher
type Publisher interface {
	TriggerEvent(m Message) error
}

// SessionChannel names the private channel of one session.
func SessionChannel(id uuid.UUID) string {
	return "session-" + id.String()
}
