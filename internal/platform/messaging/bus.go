package messaging

import (
	"context"
	"log/slog"
	"sync"

	"creatorpass/internal/shared/events"
)

// Bus is the in-process event publisher used for single-process runs and
// tests. Delivery is best-effort: a subscriber that stops draining its
// channel loses events rather than blocking publishers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan events.Envelope
	logger      *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[string][]chan events.Envelope),
		logger:      logger,
	}
}

func (b *Bus) Publish(_ context.Context, topic string, event events.Envelope) error {
	b.mu.RLock()
	subs := append([]chan events.Envelope(nil), b.subscribers[topic]...)
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("event dropped for slow subscriber",
				"event", "bus_event_dropped",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"event_type", event.EventType,
			)
		}
	}
	return nil
}

func (b *Bus) Subscribe(topic string, buffer int) <-chan events.Envelope {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan events.Envelope, buffer)

	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()
	return ch
}
