package service

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/killpowa/api/internal/model"
)

// EventType represents the type of event
type EventType string

const (
	// Domain events
	EventNewLogin    EventType = "NewLogin"
	EventNewRegister EventType = "NewRegister"
	EventNewReferral EventType = "NewReferral"

	// System events
	EventHeartbeat EventType = "heartbeat"
)

// Event is the envelope delivered to live subscribers
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// ReferralPayload is the data carried by a NewReferral event
type ReferralPayload struct {
	Referrer     string `json:"referrer"`
	ReferredUser string `json:"referred_user"`
}

// Format returns the SSE formatted string
func (e *Event) Format() string {
	data, _ := json.Marshal(e)
	return "data: " + string(data) + "\n\n"
}

// Subscriber represents a connected live stream client
type Subscriber struct {
	ID     string
	Events chan *Event
	Done   chan struct{}
}

// EventHub is the in-process broadcast channel for domain events: one
// producer side used by the orchestrator, any number of independently
// positioned consumers. Events published while a consumer is not subscribed
// are lost (no replay); delivery is at-most-once, best-effort.
//
// Overflow policy: each subscriber has a bounded buffer. When it is full the
// event is dropped for that subscriber rather than blocking the producer.
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	heartbeat   *time.Ticker
	done        chan struct{}
}

// subscriberBuffer bounds how far a slow consumer may fall behind before
// events are dropped for it.
const subscriberBuffer = 100

// NewEventHub creates a new event hub. The heartbeat interval drives
// keep-alive ticks independent of domain event flow.
func NewEventHub(heartbeatInterval time.Duration) *EventHub {
	hub := &EventHub{
		subscribers: make(map[string]*Subscriber),
		done:        make(chan struct{}),
	}
	hub.heartbeat = time.NewTicker(heartbeatInterval)
	go hub.sendHeartbeats()
	return hub
}

// Subscribe adds a new subscriber. Only events published after this call are
// delivered to it.
func (h *EventHub) Subscribe() *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{
		ID:     uuid.New().String(),
		Events: make(chan *Event, subscriberBuffer),
		Done:   make(chan struct{}),
	}
	h.subscribers[sub.ID] = sub
	return sub
}

// Unsubscribe removes a subscriber and releases its buffer
func (h *EventHub) Unsubscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[subscriberID]; ok {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, subscriberID)
	}
}

// Publish delivers an event to every current subscriber. It never blocks and
// never fails the caller: with zero subscribers it is a no-op, and a full
// subscriber buffer drops the event for that subscriber only.
func (h *EventHub) Publish(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Events <- event:
		default:
			slog.Debug("subscriber lagging, dropping event",
				slog.String("subscriber_id", sub.ID),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

// sendHeartbeats delivers periodic keep-alive ticks to all subscribers,
// decoupled from domain event flow.
func (h *EventHub) sendHeartbeats() {
	for {
		select {
		case <-h.heartbeat.C:
			h.Publish(&Event{
				Type: EventHeartbeat,
				Data: map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				},
			})
		case <-h.done:
			return
		}
	}
}

// Close stops the event hub and tears down all subscribers
func (h *EventHub) Close() {
	close(h.done)
	h.heartbeat.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subscribers {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, id)
	}
}

// SubscriberCount returns the number of connected subscribers
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Event constructors used by the orchestrator

// NewLoginEvent marks a successful login of an existing user
func NewLoginEvent(user *model.User) *Event {
	return &Event{Type: EventNewLogin, Data: user}
}

// NewRegisterEvent marks a newly created account
func NewRegisterEvent(user *model.User) *Event {
	return &Event{Type: EventNewRegister, Data: user}
}

// NewReferralEvent marks a registration that linked a referrer
func NewReferralEvent(referrer, referredUser string) *Event {
	return &Event{Type: EventNewReferral, Data: ReferralPayload{
		Referrer:     referrer,
		ReferredUser: referredUser,
	}}
}
