package event

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"golang.org/x/exp/slog"
	"sync"
)

// WSPublisher delivers session events by writing them to the bundled ws
// server, which fans them out to subscribed clients. Writes are serialized
// because gorilla connections allow one concurrent writer.
type WSPublisher struct {
	log  *slog.Logger
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSPublisher(log *slog.Logger, conn *websocket.Conn) *WSPublisher {
	return &WSPublisher{
		log:  log,
		conn: conn,
	}
}

func (p *WSPublisher) TriggerEvent(m Message) error {
	const op = "handlers.event.WSPublisher.TriggerEvent"

	msg, err := json.Marshal(m)
	if err != nil {
		p.log.Error("failed to marshal message", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		p.log.Error("failed to trigger event", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
