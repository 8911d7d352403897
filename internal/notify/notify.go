// Package notify carries the user-visible outcome of every mutation:
// exactly one transient notification per attempt, success or failure.
// Notifications are kept in a bounded recent list and fanned out to
// connected dashboard clients.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level distinguishes success toasts from failure toasts
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient user-visible message
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Kind      string    `json:"kind"` // entity kind the mutation touched
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier records mutation outcomes
type Notifier interface {
	Success(kind, message string)
	Error(kind, message string)
}

const recentLimit = 100

// Hub implements Notifier with a bounded recent list and subscriber
// fan-out. Slow subscribers drop notifications rather than block a
// mutation's commit or rollback path.
type Hub struct {
	mu          sync.Mutex
	recent      []Notification
	subscribers map[chan Notification]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Notification]struct{}),
	}
}

// Success records a success notification
func (h *Hub) Success(kind, message string) {
	h.publish(Notification{
		ID:        uuid.New(),
		Level:     LevelSuccess,
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// Error records a failure notification
func (h *Hub) Error(kind, message string) {
	h.publish(Notification{
		ID:        uuid.New(),
		Level:     LevelError,
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func (h *Hub) publish(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, n)
	if len(h.recent) > recentLimit {
		h.recent = h.recent[len(h.recent)-recentLimit:]
	}

	for ch := range h.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribe registers a listener and returns its channel plus a cancel
// function. Cancel must be called when the listener goes away.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	ch := make(chan Notification, 16)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subscribers, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Recent returns a copy of the recent notifications, oldest first
func (h *Hub) Recent() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Notification, len(h.recent))
	copy(out, h.recent)
	return out
}
