package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func receiveEvent(t *testing.T, events chan Event) Event {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return Event{}
	}
}

func TestHub_BroadcastReachesOnlyWatchersOfThatTasting(t *testing.T) {
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	defer close(done)

	go hub.Run(done)

	watcher := &Client{hub: hub, tastingID: 10, send: make(chan Event, 4)}
	bystander := &Client{hub: hub, tastingID: 11, send: make(chan Event, 4)}

	hub.Register(watcher)
	hub.Register(bystander)

	hub.Broadcast(Event{Type: EventAdvance, TastingID: 10, BeerNo: 4})

	event := receiveEvent(t, watcher.send)
	assert.Equal(t, EventAdvance, event.Type)
	assert.Equal(t, 4, event.BeerNo)

	select {
	case event := <-bystander.send:
		t.Fatalf("bystander received event %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	defer close(done)

	go hub.Run(done)

	watcher := &Client{hub: hub, tastingID: 10, send: make(chan Event, 4)}
	hub.Register(watcher)
	hub.Unregister(watcher)

	select {
	case _, open := <-watcher.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for send channel to close")
	}
}

func TestHub_DropsClientThatCannotKeepUp(t *testing.T) {
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	defer close(done)

	go hub.Run(done)

	slow := &Client{hub: hub, tastingID: 10, send: make(chan Event, 1)}
	hub.Register(slow)

	hub.Broadcast(Event{Type: EventVote, TastingID: 10, BeerNo: 1})
	hub.Broadcast(Event{Type: EventVote, TastingID: 10, BeerNo: 2})

	// The first event is buffered; the second overflows and the hub drops
	// the client, closing its channel.
	first := receiveEvent(t, slow.send)
	require.Equal(t, 1, first.BeerNo)

	select {
	case _, open := <-slow.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for slow client to be dropped")
	}
}
