package services

import (
	"testing"
	"time"
)

func TestHubBroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Email: "alice@example.com", Send: make(chan []byte, 1), Hub: hub}
	hub.register <- client

	hub.Broadcast([]byte(`{"status":"in_transit"}`))

	select {
	case msg := <-client.Send:
		if string(msg) != `{"status":"in_transit"}` {
			t.Fatalf("unexpected message %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the broadcast")
	}

	hub.unregister <- client
	// A broadcast with no subscribers still drains.
	hub.Broadcast([]byte(`{}`))

	if n := hub.ConnectedClients(); n != 0 {
		t.Fatalf("expected no connected subscribers, got %d", n)
	}
	if _, open := <-client.Send; open {
		t.Fatal("expected the send channel to be closed on unregister")
	}
}
