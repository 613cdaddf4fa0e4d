package realtime

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestHubPublishReachesTopicSubscribers(t *testing.T) {
	hub := newTestHub()
	dm := hub.Subscribe("dm:1:2")
	other := hub.Subscribe("dm:3:4")

	hub.Publish("dm:1:2", "hello")

	select {
	case event := <-dm.Events:
		if event.Topic != "dm:1:2" || event.Payload != "hello" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	select {
	case event := <-other.Events:
		t.Fatalf("event leaked across topics: %+v", event)
	default:
	}
}

func TestHubPublishToEmptyTopic(t *testing.T) {
	hub := newTestHub()
	hub.Publish("stream:42", "nobody listening")
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("group:5")

	hub.Unsubscribe(sub)
	if _, ok := <-sub.Events; ok {
		t.Fatal("channel must be closed after unsubscribe")
	}
	if hub.SubscriberCount("group:5") != 0 {
		t.Fatal("topic must be removed with its last subscriber")
	}

	hub.Unsubscribe(sub)
}

func TestHubSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("stream:1")

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish("stream:1", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	if len(sub.Events) != subscriberBuffer {
		t.Fatalf("expected full buffer, got %d", len(sub.Events))
	}
}

func TestHubMultipleSubscribersSameTopic(t *testing.T) {
	hub := newTestHub()
	a := hub.Subscribe("group:9")
	b := hub.Subscribe("group:9")

	hub.Publish("group:9", "drop")

	for _, sub := range []*Subscription{a, b} {
		select {
		case event := <-sub.Events:
			if event.Payload != "drop" {
				t.Fatalf("unexpected payload: %v", event.Payload)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber missed event")
		}
	}

	if hub.SubscriberCount("group:9") != 2 {
		t.Fatalf("unexpected subscriber count: %d", hub.SubscriberCount("group:9"))
	}
}
