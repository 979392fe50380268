package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lumenworks/backoffice/internal/shared/goroutine"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

const handlerTimeout = 30 * time.Second

// InMemoryEventDispatcher fans events out to subscribed handlers on background goroutines.
// Handler errors and panics are logged and never reach the publisher.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	inflight sync.WaitGroup
	logger   logger.Interface
}

// NewInMemoryEventDispatcher creates a new in-memory event dispatcher
func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		logger:   log,
	}
}

// Publish enqueues a single event without blocking.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// PublishAll publishes multiple events
func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Unsubscribe removes a handler for specific event types
func (d *InMemoryEventDispatcher) Unsubscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, exists := d.handlers[eventType]
	if !exists {
		return nil
	}

	kept := make([]EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != handler {
			kept = append(kept, h)
		}
	}

	if len(kept) == 0 {
		delete(d.handlers, eventType)
	} else {
		d.handlers[eventType] = kept
	}
	return nil
}

// Start starts the event dispatcher
func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop drains queued events and waits for in-flight handlers.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	d.inflight.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.GetEventType()]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		h := handler
		d.inflight.Add(1)
		goroutine.SafeGo(d.logger, "event:"+event.GetEventType(), func() {
			defer d.inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
			defer cancel()
			if err := h.Handle(ctx, event); err != nil {
				d.logger.Warnw("event handler failed",
					"event_type", event.GetEventType(),
					"event_id", event.GetEventID(),
					"aggregate_id", event.GetAggregateID(),
					"error", err,
				)
			}
		})
	}
}

// SimpleEventHandler adapts a function to EventHandler.
type SimpleEventHandler struct {
	eventType string
	handler   func(context.Context, DomainEvent) error
}

// NewSimpleEventHandler creates a new simple event handler
func NewSimpleEventHandler(eventType string, handler func(context.Context, DomainEvent) error) *SimpleEventHandler {
	return &SimpleEventHandler{
		eventType: eventType,
		handler:   handler,
	}
}

// Handle processes a domain event
func (h *SimpleEventHandler) Handle(ctx context.Context, event DomainEvent) error {
	if h.handler != nil {
		return h.handler(ctx, event)
	}
	return nil
}

// CanHandle checks if this handler can handle the given event type
func (h *SimpleEventHandler) CanHandle(eventType string) bool {
	return h.eventType == eventType
}
