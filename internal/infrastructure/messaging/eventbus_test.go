package messaging

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	return New(Config{
		Logger:        logger.New(logger.Options{Output: io.Discard}),
		EnableMetrics: true,
	})
}

func TestPublishRoutesToSubscribers(t *testing.T) {
	bus := newTestBus(t)

	var got []shared.EventType
	require.NoError(t, bus.Subscribe(shared.EventStudentAdded, func(e shared.Event) error {
		got = append(got, e.EventType())
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewStudentAddedEvent("20CS1001", "Amit Kumar", "BTech", "CSE")))
	require.NoError(t, bus.Publish(shared.NewStudentRemovedEvent("20CS1001")))

	assert.Equal(t, []shared.EventType{shared.EventStudentAdded}, got,
		"typed handler sees only its own event type")
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := newTestBus(t)

	var count int
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		count++
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewStudentAddedEvent("A1", "Amit Kumar", "BTech", "CSE")))
	require.NoError(t, bus.Publish(shared.NewRosterSortedEvent("roll", 3)))
	require.NoError(t, bus.Publish(shared.NewMarksUpdatedEvent("A1", 94)))

	assert.Equal(t, 3, count)
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	bus := newTestBus(t)

	var order []string
	require.NoError(t, bus.Subscribe(shared.EventStudentAdded, func(shared.Event) error {
		order = append(order, "first")
		return nil
	}))
	require.NoError(t, bus.Subscribe(shared.EventStudentAdded, func(shared.Event) error {
		order = append(order, "second")
		return nil
	}))
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		order = append(order, "global")
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewStudentAddedEvent("A1", "Amit Kumar", "BTech", "CSE")))
	assert.Equal(t, []string{"first", "second", "global"}, order)
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus(t)

	var reached bool
	require.NoError(t, bus.Subscribe(shared.EventStudentAdded, func(shared.Event) error {
		return errors.New("handler failed")
	}))
	require.NoError(t, bus.Subscribe(shared.EventStudentAdded, func(shared.Event) error {
		reached = true
		return nil
	}))

	err := bus.Publish(shared.NewStudentAddedEvent("A1", "Amit Kumar", "BTech", "CSE"))
	require.NoError(t, err, "handler errors are swallowed after logging")
	assert.True(t, reached)

	m := bus.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, int64(2), m.HandlerExecs)
	assert.Equal(t, int64(1), m.HandlerSuccesses)
	assert.Equal(t, int64(1), m.HandlerFailures)
}

func TestPublishNilAndSubscribeNil(t *testing.T) {
	bus := newTestBus(t)

	assert.ErrorIs(t, bus.Publish(nil), ErrNilEvent)
	assert.ErrorIs(t, bus.Subscribe(shared.EventStudentAdded, nil), ErrNilHandler)
	assert.ErrorIs(t, bus.SubscribeAll(nil), ErrNilHandler)
}

func TestMetricsCounters(t *testing.T) {
	bus := newTestBus(t)

	require.NoError(t, bus.Publish(shared.NewStudentAddedEvent("A1", "Amit Kumar", "BTech", "CSE")))
	require.NoError(t, bus.Publish(shared.NewStudentAddedEvent("B2", "Maya Rao", "MTech", "ECE")))
	require.NoError(t, bus.Publish(shared.NewRosterSortedEvent("roll", 2)))

	m := bus.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, int64(2), m.PublishedTotal[shared.EventStudentAdded])
	assert.Equal(t, int64(1), m.PublishedTotal[shared.EventRosterSorted])
	assert.Equal(t, int64(3), m.TotalPublished())
}

func TestMetricsDisabled(t *testing.T) {
	bus := New(Config{Logger: logger.New(logger.Options{Output: io.Discard})})
	require.NoError(t, bus.Publish(shared.NewRosterSortedEvent("roll", 0)))
	assert.Nil(t, bus.Metrics())
}
