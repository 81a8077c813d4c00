package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Event types carried over the live channel. Clients treat every event as a
// hint to refetch; the payload is advisory, not authoritative state.
const (
	EventAdvance = "advance"
	EventReveal  = "reveal"
	EventRoster  = "roster"
	EventVote    = "vote"
)

// Event is one change notification for a tasting.
type Event struct {
	Type      string `json:"type"`
	TastingID uint   `json:"tastingId"`
	BeerNo    int    `json:"beerNo,omitempty"`
	Revealed  bool   `json:"revealed,omitempty"`
}

const channel = "olsmak:events"

// Bridge carries events through Redis pub/sub so every server instance sees
// changes made on any of them, then fans them out via the local hub.
type Bridge struct {
	rdb    *redis.Client
	hub    *Hub
	logger *zap.Logger
}

func NewBridge(rdb *redis.Client, hub *Hub, logger *zap.Logger) *Bridge {
	return &Bridge{rdb: rdb, hub: hub, logger: logger}
}

// Publish sends an event into the shared channel. Failures are logged and
// swallowed: a missed notification only delays clients until their next
// poll, it never loses data.
func (b *Bridge) Publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("error encoding event", zap.Error(err))

		return
	}

	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		b.logger.Error("error publishing event", zap.String("type", event.Type), zap.Error(err))
	}
}

// Run subscribes to the shared channel and forwards events to the hub until
// the context is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	pubsub := b.rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("error subscribing to %s: %w", channel, err)
	}

	b.logger.Info("event bridge running", zap.String("channel", channel))

	messages := pubsub.Channel()

	for {
		select {
		case message, open := <-messages:
			if !open {
				return nil
			}

			var event Event
			if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
				b.logger.Error("error decoding event", zap.Error(err))

				continue
			}

			b.hub.Broadcast(event)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
