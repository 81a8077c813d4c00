package realtime

import (
	"go.uber.org/zap"
)

// Hub fans events out to the WebSocket clients watching each tasting. All
// subscription state is owned by the Run goroutine; the exported methods just
// post to its channels.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	events     chan Event
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan Event, 64),
		logger:     logger,
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast delivers an event to every client watching its tasting.
func (h *Hub) Broadcast(event Event) {
	h.events <- event
}

// Run owns the client registry until the done channel closes. Clients that
// cannot keep up with the event stream are dropped rather than allowed to
// stall everyone else.
func (h *Hub) Run(done <-chan struct{}) {
	clients := make(map[uint]map[*Client]bool)

	for {
		select {
		case client := <-h.register:
			if clients[client.tastingID] == nil {
				clients[client.tastingID] = make(map[*Client]bool)
			}

			clients[client.tastingID][client] = true
			h.logger.Info("client connected",
				zap.Uint("tasting_id", client.tastingID),
				zap.Int("watchers", len(clients[client.tastingID])))

		case client := <-h.unregister:
			if watchers := clients[client.tastingID]; watchers[client] {
				delete(watchers, client)
				close(client.send)

				if len(watchers) == 0 {
					delete(clients, client.tastingID)
				}
			}

		case event := <-h.events:
			for client := range clients[event.TastingID] {
				select {
				case client.send <- event:
				default:
					h.logger.Warn("dropping slow client", zap.Uint("tasting_id", client.tastingID))
					delete(clients[event.TastingID], client)
					close(client.send)
				}
			}

		case <-done:
			for _, watchers := range clients {
				for client := range watchers {
					close(client.send)
				}
			}

			return
		}
	}
}
