package services

import (
	"log"

	"lms/models"
)

// EventDispatcher hands domain events to interested handlers after the change
// that raised them has been persisted. Dispatch failures are logged, never
// propagated.
type EventDispatcher interface {
	Dispatch(event models.DomainEvent)
}

// LogEventDispatcher writes every event to the application log.
type LogEventDispatcher struct{}

func NewLogEventDispatcher() *LogEventDispatcher {
	return &LogEventDispatcher{}
}

func (d *LogEventDispatcher) Dispatch(event models.DomainEvent) {
	log.Printf("[EVENTS] %s occurred at %s: %+v", event.Name(), event.OccurredAt().Format("2006-01-02 15:04:05"), event)
}
