package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveWithin(t *testing.T, ch chan []byte, d time.Duration) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	a := &Client{ID: "a", Send: make(chan []byte, 4)}
	b := &Client{ID: "b", Send: make(chan []byte, 4)}
	hub.Register <- a
	hub.Register <- b

	hub.Broadcast([]byte(`{"collection":"vehicles"}`))

	assert.Equal(t, `{"collection":"vehicles"}`, string(receiveWithin(t, a.Send, time.Second)))
	assert.Equal(t, `{"collection":"vehicles"}`, string(receiveWithin(t, b.Send, time.Second)))
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	a := &Client{ID: "a", Send: make(chan []byte, 4)}
	hub.Register <- a
	hub.Unregister <- a

	hub.Broadcast([]byte("x"))

	// The Send channel is closed on unregister; a closed receive yields
	// immediately with ok=false rather than the broadcast payload.
	select {
	case msg, ok := <-a.Send:
		require.False(t, ok, "unexpected message %q", msg)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubDropsSlowConsumers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	slow := &Client{ID: "slow", Send: make(chan []byte)} // no buffer, never read
	hub.Register <- slow

	hub.Broadcast([]byte("one"))

	// The client is evicted instead of blocking the hub.
	assert.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}
