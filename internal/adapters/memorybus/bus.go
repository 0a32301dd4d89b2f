package memorybus

import (
	"sync"

	"github.com/rs/xid"

	"github.com/jukebox-go/jukebox/internal/ports"
)

const subscriberBuffer = 64

type subscriber struct {
	ch     chan ports.Event
	topics map[string]struct{}
}

func (s *subscriber) wants(topic string) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Bus diffuse les événements (playlist.changed, player.open, theme.changed)
// aux abonnés en mémoire. Un abonné trop lent perd des événements.
type Bus struct {
	mu    sync.Mutex
	subs  map[chan ports.Event]*subscriber
	alive bool
}

func New() *Bus {
	return &Bus{subs: make(map[chan ports.Event]*subscriber), alive: true}
}

func (b *Bus) Publish(topic string, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.alive {
		return
	}
	evt := ports.Event{ID: xid.New().String(), Topic: topic, Payload: payload}
	for ch, sub := range b.subs {
		if !sub.wants(topic) {
			continue
		}
		select {
		case ch <- evt:
		default:
			// drop si le client est trop lent
		}
	}
}

// Subscribe sans topic = tous les événements.
func (b *Bus) Subscribe(topics ...string) (<-chan ports.Event, func()) {
	ch := make(chan ports.Event, subscriberBuffer)
	sub := &subscriber{ch: ch, topics: make(map[string]struct{}, len(topics))}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	b.mu.Lock()
	if !b.alive {
		close(ch)
		b.mu.Unlock()
		return ch, func() {}
	}
	b.subs[ch] = sub
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}

	return ch, cancel
}

// Close ferme tous les abonnements ; Publish devient un no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.alive {
		return
	}
	b.alive = false
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
