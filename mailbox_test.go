package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/notify"
)

func TestMailbox_DeliverReceive(t *testing.T) {
	t.Parallel()

	box := notify.NewMailbox()
	defer box.Close()

	ctx := context.Background()
	require.NoError(t, box.Deliver(ctx, "first"))
	require.NoError(t, box.Deliver(ctx, "second"))

	assert.Equal(t, "first", <-box.Receive())
	assert.Equal(t, "second", <-box.Receive())
}

func TestMailbox_FullBufferDropsWithoutBlocking(t *testing.T) {
	t.Parallel()

	box := notify.NewMailbox(notify.WithMailboxBuffer(2))
	defer box.Close()

	ctx := context.Background()
	require.NoError(t, box.Deliver(ctx, 1))
	require.NoError(t, box.Deliver(ctx, 2))

	err := box.Deliver(ctx, 3)
	assert.ErrorIs(t, err, notify.ErrMailboxFull)

	// Draining one slot makes room again.
	<-box.Receive()
	assert.NoError(t, box.Deliver(ctx, 4))
}

func TestMailbox_Close(t *testing.T) {
	t.Parallel()

	t.Run("deliver after close", func(t *testing.T) {
		t.Parallel()

		box := notify.NewMailbox()
		require.NoError(t, box.Close())

		err := box.Deliver(context.Background(), "late")
		assert.ErrorIs(t, err, notify.ErrMailboxClosed)
	})

	t.Run("repeated close", func(t *testing.T) {
		t.Parallel()

		box := notify.NewMailbox()
		require.NoError(t, box.Close())
		assert.ErrorIs(t, box.Close(), notify.ErrMailboxClosed)
	})

	t.Run("queued notifications stay readable", func(t *testing.T) {
		t.Parallel()

		box := notify.NewMailbox()
		require.NoError(t, box.Deliver(context.Background(), "queued"))
		require.NoError(t, box.Close())

		assert.Equal(t, "queued", <-box.Receive())

		_, open := <-box.Receive()
		assert.False(t, open, "channel should be closed after draining")
	})
}

func TestMailbox_ContextCancelled(t *testing.T) {
	t.Parallel()

	box := notify.NewMailbox()
	defer box.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := box.Deliver(ctx, "cancelled")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMailbox_AsPublishAction(t *testing.T) {
	defer goleak.VerifyNone(t)

	center := notify.New()
	box := notify.NewMailbox(notify.WithMailboxBuffer(8))

	o1 := &testObserver{name: "o1"}
	o2 := &testObserver{name: "o2"}
	center.Subscribe(o1, "ping", notify.String("a"))
	center.Subscribe(o2, "ping", notify.String("b"))

	done := make(chan []string)
	go func() {
		var names []string
		for observer := range box.Receive() {
			names = append(names, observer.(*testObserver).name)
		}
		done <- names
	}()

	center.Publish("ping", notify.String("a"), box.Action(context.Background()))
	require.NoError(t, box.Close())

	assert.Equal(t, []string{"o1"}, <-done)
}

func TestMailbox_ActionDropsOnFullBuffer(t *testing.T) {
	t.Parallel()

	center := notify.New()
	box := notify.NewMailbox(notify.WithMailboxBuffer(1))
	defer box.Close()

	center.Subscribe(&testObserver{name: "o1"}, "ping", nil)
	center.Subscribe(&testObserver{name: "o2"}, "ping", nil)

	// Nobody drains the mailbox: the second delivery is dropped, and
	// Publish still returns without blocking.
	assert.NotPanics(t, func() {
		center.Publish("ping", nil, box.Action(context.Background()))
	})

	assert.Equal(t, "o1", (<-box.Receive()).(*testObserver).name)
}
