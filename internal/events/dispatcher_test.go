package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/events"
)

func TestDispatcher_PublishSubscribe(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	var seen []*domain.CurrentUser
	d.Subscribe(events.EventSessionChanged, func(e events.Event) {
		seen = append(seen, e.User)
	})

	user := &domain.CurrentUser{Username: "jdoe"}
	d.Publish(events.Event{Type: events.EventSessionChanged, Timestamp: time.Now(), User: user})
	d.Publish(events.Event{Type: events.EventSessionChanged, Timestamp: time.Now(), User: nil})

	assert.Equal(t, []*domain.CurrentUser{user, nil}, seen)
}

func TestDispatcher_PublishIsSynchronous(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	done := false
	d.Subscribe(events.EventSessionChanged, func(events.Event) {
		done = true
	})

	d.Publish(events.Event{Type: events.EventSessionChanged})
	assert.True(t, done)
}

func TestDispatcher_Cancel(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	calls := 0
	cancel := d.Subscribe(events.EventSessionChanged, func(events.Event) {
		calls++
	})

	d.Publish(events.Event{Type: events.EventSessionChanged})
	cancel()
	d.Publish(events.Event{Type: events.EventSessionChanged})

	assert.Equal(t, 1, calls)
}

func TestDispatcher_TypeIsolation(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(events.EventSessionChanged, func(events.Event) {
		calls++
	})

	d.Publish(events.Event{Type: events.EventType("something_else")})
	assert.Zero(t, calls)
}

func TestDispatcher_PublishWithoutListeners(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	assert.NotPanics(t, func() {
		d.Publish(events.Event{Type: events.EventSessionChanged})
	})
}
