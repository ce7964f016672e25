package events

import (
	"context"
	"encoding/json"

	"auction-portal/utils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// GlobalTopic carries the fan-out visible to every observer.
const GlobalTopic = "auction.updates"

// ConnTopic returns the per-connection reply topic for a connection ID.
func ConnTopic(connID string) string {
	return "conn." + connID
}

// Bus is an in-process Broadcaster backed by a watermill GoChannel pub/sub.
// Publishing never blocks the caller on observer consumption; a message to a
// topic without subscribers is dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates a new in-process event bus
func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NopLogger{},
		),
	}
}

// Reply delivers an event to a single connection's topic
func (b *Bus) Reply(connID string, event Event) {
	b.publish(ConnTopic(connID), event)
}

// Broadcast fans an event out on the global topic
func (b *Bus) Broadcast(event Event) {
	b.publish(GlobalTopic, event)
}

// publish marshals and publishes; delivery failures are logged, never
// surfaced, so broadcast stays decoupled from the state change that
// triggered it.
func (b *Bus) publish(topic string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Error("events: failed to marshal event", map[string]any{
			"topic": topic,
			"event": event.Name,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		utils.Error("events: failed to publish event", map[string]any{
			"topic": topic,
			"event": event.Name,
			"error": err.Error(),
		})
	}
}

// Subscribe returns the message stream for a topic. The channel closes when
// ctx is cancelled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down and closes all subscriber channels
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Decode unmarshals a bus message back into an Event.
func Decode(msg *message.Message) (Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}
