package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	h := NewHub()

	ch := h.Subscribe()
	require.NotNil(t, ch)
	assert.Equal(t, 1, h.Len())

	h.Unsubscribe(ch)
	assert.Equal(t, 0, h.Len())

	// Channel is closed after unsubscribe.
	_, open := <-ch
	assert.False(t, open)
}

func TestUnsubscribeTwiceIsSafe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)
	assert.NotPanics(t, func() { h.Unsubscribe(ch) })
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Broadcast()

	for _, ch := range []chan struct{}{a, b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive ping")
		}
	}
}

func TestBroadcastDoesNotBlockOnSlowSubscriber(t *testing.T) {
	h := NewHub()
	slow := h.Subscribe()
	defer h.Unsubscribe(slow)

	done := make(chan struct{})
	go func() {
		// The buffered ping absorbs the first broadcast; later ones
		// are dropped rather than blocking.
		h.Broadcast()
		h.Broadcast()
		h.Broadcast()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
}
