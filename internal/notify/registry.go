package notify

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// EventType classifies reservation events exposed to observers.
type EventType string

const (
	EventReservationCreated EventType = "reservation.created"
	EventStatusChanged      EventType = "reservation.status_changed"
)

// Event is delivered to every subscriber when a reservation is created or
// transitioned. The engine exposes the transition result only; deciding
// notification content and delivering it is the observer's job.
type Event struct {
	Type          EventType
	ReservationID int64
	BusinessID    int64
	UserID        int64
	OldStatus     domain.ReservationStatus // empty for EventReservationCreated
	NewStatus     domain.ReservationStatus
	OccurredAt    time.Time
}

// Handler consumes one event. Handlers run synchronously on the publishing
// goroutine and must not block.
type Handler func(Event)

// Registry owns the set of subscribers. Each Subscribe call returns an
// explicit handle the caller uses to unsubscribe; there is no shared
// reference counter.
type Registry struct {
	mu     sync.RWMutex
	nextID int64
	subs   map[int64]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[int64]Handler)}
}

// Subscribe registers h and returns its handle.
func (r *Registry) Subscribe(h Handler) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.subs[id] = h

	return &Subscription{id: id, registry: r}
}

// Publish delivers e to every current subscriber.
func (r *Registry) Publish(e Event) {
	r.mu.RLock()
	handlers := make([]Handler, 0, len(r.subs))
	for _, h := range r.subs {
		handlers = append(handlers, h)
	}
	r.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Count returns the number of active subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// Subscription is the handle owned by a single subscriber.
type Subscription struct {
	id       int64
	registry *Registry
	once     sync.Once
}

// Unsubscribe removes the subscriber. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.registry.mu.Lock()
		defer s.registry.mu.Unlock()
		delete(s.registry.subs, s.id)
	})
}
