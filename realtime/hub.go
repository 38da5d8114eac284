package realtime

import (
	"sync"
	"time"
)

// Message is one chat event on the wire
type Message struct {
	Author  string    `json:"author"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// Subscriber is one connected client's handle on the hub
type Subscriber struct {
	ch chan Message
}

// Recv is the subscriber's delivery channel. It closes on unsubscribe.
func (s *Subscriber) Recv() <-chan Message {
	return s.ch
}

// Hub fans each published message out to every current subscriber.
// Delivery is best-effort: a subscriber whose buffer is full misses the
// message rather than blocking the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{ch: make(chan Message, 32)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(msg Message) {
	h.mu.Lock()
	for s := range h.subs {
		select {
		case s.ch <- msg:
		default:
		}
	}
	h.mu.Unlock()
}

// Count reports the current number of subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
