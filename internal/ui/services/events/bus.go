package events

import (
	"log"
	"runtime/debug"
	"sync"

	"quickpick/internal/domain"
)

// Bus delivers events to subscribers on the publishing goroutine.
// Handlers run in subscription order before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[domain.EventType][]listener
}

type listener struct {
	id      int
	handler Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[domain.EventType][]listener),
	}
}

// Subscribe registers a handler for an event type.
// Returns an unsubscribe function
func (b *Bus) Subscribe(eventType domain.EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		current := b.listeners[eventType]
		for i, l := range current {
			if l.id == id {
				b.listeners[eventType] = append(current[:i:i], current[i+1:]...)
				break
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event domain.DomainEvent) {
	b.mu.RLock()
	handlers := make([]listener, len(b.listeners[event.Type()]))
	copy(handlers, b.listeners[event.Type()])
	b.mu.RUnlock()

	for _, l := range handlers {
		b.call(l.handler, event)
	}
}

func (b *Bus) call(h Handler, event domain.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Recorder is an EventBus that keeps every published event.
// Useful for logging a session and in tests.
type Recorder struct {
	Bus
	mu     sync.Mutex
	events []domain.DomainEvent
}

// NewRecorder creates a recording bus
func NewRecorder() *Recorder {
	return &Recorder{Bus: Bus{listeners: make(map[domain.EventType][]listener)}}
}

// Publish records the event and forwards it to subscribers
func (r *Recorder) Publish(event domain.DomainEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.Bus.Publish(event)
}

// Events returns the recorded events in publish order
func (r *Recorder) Events() []domain.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in publish order
func (r *Recorder) Types() []domain.EventType {
	events := r.Events()
	types := make([]domain.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type()
	}
	return types
}
