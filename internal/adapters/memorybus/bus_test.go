package memorybus

import (
	"testing"
	"time"
)

func TestBus_TopicFilter(t *testing.T) {
	b := New()
	all, cancelAll := b.Subscribe()
	defer cancelAll()
	players, cancelPlayers := b.Subscribe("player.open")
	defer cancelPlayers()

	b.Publish("playlist.changed", []byte(`{}`))
	b.Publish("player.open", []byte(`{"index":0}`))

	select {
	case evt := <-players:
		if evt.Topic != "player.open" {
			t.Fatalf("filtered subscriber got %q", evt.Topic)
		}
		if evt.ID == "" {
			t.Fatalf("expected event id")
		}
	case <-time.After(250 * time.Millisecond):
		t.Fatalf("expected player.open event")
	}

	for _, want := range []string{"playlist.changed", "player.open"} {
		select {
		case evt := <-all:
			if evt.Topic != want {
				t.Fatalf("want %q, got %q", want, evt.Topic)
			}
		case <-time.After(250 * time.Millisecond):
			t.Fatalf("expected %q event", want)
		}
	}
}

func TestBus_CloseEndsSubscriptions(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()
	b.Close()

	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed")
	}
	// cancel après Close ne doit pas paniquer.
	cancel()
	b.Publish("playlist.changed", nil)

	late, _ := b.Subscribe()
	if _, ok := <-late; ok {
		t.Fatalf("subscription after Close should be closed")
	}
}
