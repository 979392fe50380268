package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents a domain event interface
type DomainEvent interface {
	// GetEventID returns a unique id, used by downstream consumers for deduplication
	GetEventID() string

	// GetAggregateID returns the ID of the aggregate that generated the event
	GetAggregateID() string

	// GetEventType returns the type/name of the event
	GetEventType() string

	// GetOccurredAt returns when the event occurred
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBaseEvent stamps a fresh event id.
func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt.UTC(),
	}
}

func (e BaseEvent) GetEventID() string       { return e.EventID }
func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler represents a handler for domain events
type EventHandler interface {
	// Handle processes a domain event
	Handle(ctx context.Context, event DomainEvent) error

	// CanHandle checks if this handler can handle the given event type
	CanHandle(eventType string) bool
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber subscribes to domain events
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}
