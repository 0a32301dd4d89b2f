package ports

type EventBus interface {
	Publish(topic string, payload []byte)
	Subscribe(topics ...string) (ch <-chan Event, cancel func())
}

type Event struct {
	ID      string
	Topic   string
	Payload []byte
}
