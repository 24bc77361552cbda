package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestRegistry_SubscribePublish(t *testing.T) {
	registry := NewRegistry()

	var received []Event
	sub := registry.Subscribe(func(e Event) {
		received = append(received, e)
	})
	defer sub.Unsubscribe()

	registry.Publish(Event{
		Type:          EventStatusChanged,
		ReservationID: 42,
		OldStatus:     domain.StatusPending,
		NewStatus:     domain.StatusConfirmed,
	})

	require.Len(t, received, 1)
	assert.Equal(t, EventStatusChanged, received[0].Type)
	assert.Equal(t, int64(42), received[0].ReservationID)
	assert.Equal(t, domain.StatusPending, received[0].OldStatus)
	assert.Equal(t, domain.StatusConfirmed, received[0].NewStatus)
}

func TestRegistry_MultipleSubscribers(t *testing.T) {
	registry := NewRegistry()

	var first, second int
	s1 := registry.Subscribe(func(Event) { first++ })
	s2 := registry.Subscribe(func(Event) { second++ })
	defer s1.Unsubscribe()
	defer s2.Unsubscribe()

	assert.Equal(t, 2, registry.Count())

	registry.Publish(Event{Type: EventReservationCreated})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestRegistry_Unsubscribe(t *testing.T) {
	registry := NewRegistry()

	var calls int
	sub := registry.Subscribe(func(Event) { calls++ })

	registry.Publish(Event{Type: EventReservationCreated})
	sub.Unsubscribe()
	registry.Publish(Event{Type: EventReservationCreated})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, registry.Count())

	// Повторный Unsubscribe безопасен
	sub.Unsubscribe()
}

func TestRegistry_ConcurrentPublish(t *testing.T) {
	registry := NewRegistry()

	var mu sync.Mutex
	calls := 0
	sub := registry.Subscribe(func(Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	defer sub.Unsubscribe()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Publish(Event{Type: EventStatusChanged})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, calls)
}
