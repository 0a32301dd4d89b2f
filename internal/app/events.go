package app

import (
	"encoding/json"
	"fmt"

	"github.com/jukebox-go/jukebox/internal/ports"
)

// publishJSON encode payload et le pousse sur bus ; bus nil = pas d'événements.
func publishJSON(bus ports.EventBus, topic string, payload any) error {
	if bus == nil {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}
	bus.Publish(topic, b)
	return nil
}
