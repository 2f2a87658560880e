package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened to the roster.
const (
	EventStudentAdded   EventType = "student.added"
	EventStudentRemoved EventType = "student.removed"
	EventMarksUpdated   EventType = "student.marks_updated"
	EventRosterSorted   EventType = "roster.sorted"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event,
	// here the roll number of the student involved.
	AggregateID() string

	// Payload returns the event data as a map for logging and encoding.
	Payload() map[string]interface{}
}

// EventHandler processes a single event.
type EventHandler func(Event) error

// EventBus routes published events to subscribed handlers.
type EventBus interface {
	Subscribe(eventType EventType, handler EventHandler) error
	SubscribeAll(handler EventHandler) error
	Publish(event Event) error
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event with a generated event ID.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// StudentAddedEvent is emitted when a student is admitted to a course.
type StudentAddedEvent struct {
	BaseEvent
	Roll   string `json:"roll"`
	Name   string `json:"name"`
	Level  string `json:"level"`
	Branch string `json:"branch"`
}

// NewStudentAddedEvent creates a StudentAddedEvent.
func NewStudentAddedEvent(roll, name, level, branch string) StudentAddedEvent {
	return StudentAddedEvent{
		BaseEvent: NewBaseEvent(EventStudentAdded, roll),
		Roll:      roll,
		Name:      name,
		Level:     level,
		Branch:    branch,
	}
}

// Payload implements Event interface.
func (e StudentAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"roll":   e.Roll,
		"name":   e.Name,
		"level":  e.Level,
		"branch": e.Branch,
	}
}

// StudentRemovedEvent is emitted when a student is removed from a course.
type StudentRemovedEvent struct {
	BaseEvent
	Roll string `json:"roll"`
}

// NewStudentRemovedEvent creates a StudentRemovedEvent.
func NewStudentRemovedEvent(roll string) StudentRemovedEvent {
	return StudentRemovedEvent{
		BaseEvent: NewBaseEvent(EventStudentRemoved, roll),
		Roll:      roll,
	}
}

// Payload implements Event interface.
func (e StudentRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{"roll": e.Roll}
}

// MarksUpdatedEvent is emitted when a student's marks change in place.
type MarksUpdatedEvent struct {
	BaseEvent
	Roll  string  `json:"roll"`
	Total float64 `json:"total"`
}

// NewMarksUpdatedEvent creates a MarksUpdatedEvent.
func NewMarksUpdatedEvent(roll string, total float64) MarksUpdatedEvent {
	return MarksUpdatedEvent{
		BaseEvent: NewBaseEvent(EventMarksUpdated, roll),
		Roll:      roll,
		Total:     total,
	}
}

// Payload implements Event interface.
func (e MarksUpdatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{"roll": e.Roll, "total": e.Total}
}

// RosterSortedEvent is emitted after an ordering operation completes.
type RosterSortedEvent struct {
	BaseEvent
	SortKey string `json:"sort_key"`
	Count   int    `json:"count"`
}

// NewRosterSortedEvent creates a RosterSortedEvent.
func NewRosterSortedEvent(sortKey string, count int) RosterSortedEvent {
	return RosterSortedEvent{
		BaseEvent: NewBaseEvent(EventRosterSorted, sortKey),
		SortKey:   sortKey,
		Count:     count,
	}
}

// Payload implements Event interface.
func (e RosterSortedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{"sort_key": e.SortKey, "count": e.Count}
}
