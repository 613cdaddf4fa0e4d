package realtime

import (
	"log/slog"
	"sync"
)

// subscriber buffer size. Slow consumers lose events instead of blocking
// the publisher, clients recover state over the REST API.
const subscriberBuffer = 16

// Event is what subscribers receive on their channel.
type Event struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

// Subscription is one listener on a topic.
type Subscription struct {
	Topic  string
	Events chan Event
}

// Hub fans events out to topic subscribers. Topics are created on first
// subscribe and removed with their last subscriber.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	logger *slog.Logger
}

// NewHub constructs an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers a listener on the topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{Topic: topic, Events: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes the listener and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[sub.Topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.topics, sub.Topic)
	}
	close(sub.Events)
}

// Publish delivers the payload to every subscriber of the topic. Sends never
// block: a subscriber with a full buffer is skipped.
func (h *Hub) Publish(topic string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.topics[topic] {
		select {
		case sub.Events <- Event{Topic: topic, Payload: payload}:
		default:
			h.logger.Warn("realtime subscriber lagging, event dropped", "topic", topic)
		}
	}
}

// SubscriberCount reports active subscribers on the topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
