// Package messaging implements the in-process event bus for the tracker.
//
// The bus is synchronous: handlers run to completion on the publisher's
// goroutine, in subscription order. The tracker's execution model is
// single-threaded, so there is no locking and the bus must not be shared
// across goroutines.
package messaging

import (
	"errors"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

var (
	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilEvent is returned when publishing a nil event.
	ErrNilEvent = errors.New("event cannot be nil")
)

// Bus is a synchronous in-memory implementation of shared.EventBus.
type Bus struct {
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *Metrics
}

// Config contains configuration for the Bus.
type Config struct {
	// Logger for structured logging; defaults to the package default.
	Logger *logger.Logger

	// EnableMetrics enables publish/handler counters.
	EnableMetrics bool
}

// New creates a new synchronous event bus.
func New(config Config) *Bus {
	if config.Logger == nil {
		config.Logger = logger.Default()
	}

	bus := &Bus{
		handlers:    make(map[shared.EventType][]shared.EventHandler),
		allHandlers: make([]shared.EventHandler, 0),
		logger:      config.Logger,
	}

	if config.EnableMetrics {
		bus.metrics = NewMetrics()
	}

	return bus
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return ErrNilHandler
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.String("event_type", string(eventType)))
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *Bus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return ErrNilHandler
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")
	return nil
}

// Publish delivers an event to all subscribed handlers in subscription
// order. Handler errors are logged and do not stop delivery to the
// remaining handlers.
func (b *Bus) Publish(event shared.Event) error {
	if event == nil {
		return ErrNilEvent
	}

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)

	if b.metrics != nil {
		b.metrics.RecordPublish(event.EventType())
	}

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.String("event_type", string(event.EventType())))
		return nil
	}

	for _, handler := range handlers {
		err := handler(event)
		if b.metrics != nil {
			b.metrics.RecordHandlerExecution(event.EventType(), err == nil)
		}
		if err != nil {
			b.logger.Error("handler error",
				logger.String("event_type", string(event.EventType())),
				logger.Err(err),
			)
		}
	}

	return nil
}

// Metrics returns the bus counters, or nil when metrics are disabled.
func (b *Bus) Metrics() *Metrics {
	return b.metrics
}

// Metrics tracks event bus counters.
type Metrics struct {
	PublishedTotal   map[shared.EventType]int64
	HandlerExecs     int64
	HandlerSuccesses int64
	HandlerFailures  int64
}

// NewMetrics creates a new counter set.
func NewMetrics() *Metrics {
	return &Metrics{
		PublishedTotal: make(map[shared.EventType]int64),
	}
}

// RecordPublish records a publish event.
func (m *Metrics) RecordPublish(eventType shared.EventType) {
	m.PublishedTotal[eventType]++
}

// RecordHandlerExecution records a handler execution.
func (m *Metrics) RecordHandlerExecution(eventType shared.EventType, success bool) {
	m.HandlerExecs++
	if success {
		m.HandlerSuccesses++
	} else {
		m.HandlerFailures++
	}
}

// TotalPublished returns the count of published events across all types.
func (m *Metrics) TotalPublished() int64 {
	var sum int64
	for _, v := range m.PublishedTotal {
		sum += v
	}
	return sum
}
