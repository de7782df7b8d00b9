package handler

import (
	"encoding/json"
	"github.com/gorilla/websocket"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"golang.org/x/exp/slog"
	"net/http"
)

// EventSubscribe is the control event a client sends to join a channel.
// Every other event is treated as a publication and fanned out.
const EventSubscribe = "subscribe"

type Message struct {
	Channel string                 `json:"channel"`
	Event   string                 `json:"event"`
	Data    map[string]interface{} `json:"data"`
}

type Subscription struct {
	Conn    *websocket.Conn
	Channel string
}

type Hub struct {
	Channels    map[string]map[*websocket.Conn]bool
	Broadcast   chan Message
	Subscribe   chan Subscription
	Unsubscribe chan *websocket.Conn
	log         *slog.Logger
}

func NewHub(
	log *slog.Logger,
) *Hub {
	return &Hub{
		Channels:    make(map[string]map[*websocket.Conn]bool),
		Broadcast:   make(chan Message),
		Subscribe:   make(chan Subscription),
		Unsubscribe: make(chan *websocket.Conn),
		log:         log,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (hub *Hub) run() {
	for {
		select {
		case sub := <-hub.Subscribe:
			if hub.Channels[sub.Channel] == nil {
				hub.Channels[sub.Channel] = make(map[*websocket.Conn]bool)
			}
			hub.Channels[sub.Channel][sub.Conn] = true

			hub.log.Info("subscribed", sl.String("channel", sub.Channel))
		case conn := <-hub.Unsubscribe:
			for channel, receivers := range hub.Channels {
				delete(receivers, conn)
				if len(receivers) == 0 {
					delete(hub.Channels, channel)
				}
			}

			if err := conn.Close(); err != nil {
				hub.log.Error("failed to close connection", sl.Err(err))
			}
		case message := <-hub.Broadcast:
			receivers, ok := hub.Channels[message.Channel]
			if !ok {
				continue
			}

			data, err := json.Marshal(message)
			if err != nil {
				hub.log.Error("failed to marshal message", sl.Err(err))

				continue
			}

			hub.log.Info("broadcasting message", sl.String("channel", message.Channel),
				sl.String("event", message.Event),
				sl.Any("data", message.Data))

			for conn := range receivers {
				if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
					hub.log.Error("failed to write message", sl.Err(err))
				}
			}
		}
	}
}

func (hub *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		ws      *websocket.Conn
		p       []byte
		message Message
	)

	ws, err = upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Error("failed to upgrade connection", sl.Err(err))

		return
	}
	defer func(ws *websocket.Conn) {
		hub.Unsubscribe <- ws
	}(ws)

	if channel := r.URL.Query().Get("channel"); channel != "" {
		hub.Subscribe <- Subscription{Conn: ws, Channel: channel}
	}

	for {
		_, p, err = ws.ReadMessage()
		if err != nil {
			hub.log.Info("connection closed", sl.Err(err))

			return
		}

		if err = json.Unmarshal(p, &message); err != nil {
			hub.log.Error("failed to unmarshal message", sl.Err(err))

			continue
		}

		hub.log.Info("incoming message", sl.String("channel", message.Channel),
			sl.String("event", message.Event),
			sl.Any("data", message.Data))

		if message.Event == EventSubscribe {
			hub.Subscribe <- Subscription{Conn: ws, Channel: message.Channel}

			continue
		}

		hub.Broadcast <- message
	}
}

func (hub *Hub) RunServer() {
	go hub.run()
}
