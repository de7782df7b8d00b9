package event

import (
	"fmt"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/pusher/pusher-http-go/v5"
	"golang.org/x/exp/slog"
)

// PusherPublisher delivers session events through the hosted Pusher channel.
type PusherPublisher struct {
	log    *slog.Logger
	pusher *pusher.Client
}

func NewPusherPublisher(log *slog.Logger, pusherClient *pusher.Client) *PusherPublisher {
	return &PusherPublisher{
		log:    log,
		pusher: pusherClient,
	}
}

func (p *PusherPublisher) TriggerEvent(m Message) error {
	const op = "handlers.event.PusherPublisher.TriggerEvent"

	if err := p.pusher.Trigger(m.Channel, m.Event, m.Data); err != nil {
		p.log.Error("failed to trigger pusher event", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
