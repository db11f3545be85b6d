package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventUserCreated, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserCreated, UserID: "u1", Email: "a@b.com"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].UserID)

	// events of other types are not delivered
	err = d.Publish(context.Background(), Event{Type: EventPasswordResetRequested, UserID: "u2"})
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserCreated}))
	assert.True(t, secondCalled)
}
