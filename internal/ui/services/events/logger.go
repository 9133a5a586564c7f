package events

import (
	"log"

	"quickpick/internal/domain"
)

// LogSession writes a log line when a session ends and when its text is
// delivered. Returns a function that removes the subscriptions.
func LogSession(bus EventBus) func() {
	unsubscribe := []func(){
		bus.Subscribe(domain.EventCommitted, func(e domain.DomainEvent) {
			if event, ok := e.(domain.CommittedEvent); ok {
				log.Printf("Session committed %s", event.Match.Label())
			}
		}),
		bus.Subscribe(domain.EventCancelled, func(e domain.DomainEvent) {
			log.Printf("Session cancelled")
		}),
		bus.Subscribe(domain.EventDelivered, func(e domain.DomainEvent) {
			if event, ok := e.(domain.DeliveredEvent); ok {
				log.Printf("Delivered %q to %s", event.Text, event.Sink)
			}
		}),
	}

	return func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}
}
