package eventbus

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicReloadStations asks any mounted map screen to re-fetch the station
// list without recentring the viewport. Fired e.g. by a double-tap on the
// map tab.
const TopicReloadStations = "stations:reload"

// Handler is invoked synchronously on Publish.
type Handler func()

// Subscription is the handle returned by Subscribe; it must be cancelled on
// teardown so remounts do not accumulate duplicate handlers.
type Subscription struct {
	ID    string
	Topic string
	bus   *Bus
}

// Cancel deregisters the handler. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.unsubscribe(s)
}

// Bus is the process-wide broadcast channel shared by components that are
// not connected through the widget tree.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string]map[string]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a topic and returns its cancellation
// handle.
func (b *Bus) Subscribe(topic string, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[string]Handler)
	}

	sub := &Subscription{
		ID:    uuid.NewString(),
		Topic: topic,
		bus:   b,
	}
	b.handlers[topic][sub.ID] = h

	b.logger.Debug("Subscribed to topic",
		zap.String("topic", topic),
		zap.String("subscription_id", sub.ID))
	return sub
}

// Publish invokes every handler registered for the topic, synchronously and
// in unspecified order.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[topic]))
	for _, h := range b.handlers[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.Debug("Publishing event",
		zap.String("topic", topic),
		zap.Int("handlers", len(handlers)))

	for _, h := range handlers {
		h()
	}
}

// SubscriberCount reports the number of live handlers for a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if handlers, ok := b.handlers[sub.Topic]; ok {
		delete(handlers, sub.ID)
		if len(handlers) == 0 {
			delete(b.handlers, sub.Topic)
		}
	}

	b.logger.Debug("Unsubscribed from topic",
		zap.String("topic", sub.Topic),
		zap.String("subscription_id", sub.ID))
}
