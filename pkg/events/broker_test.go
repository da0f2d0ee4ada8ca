package events

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_SubscribeAndBroadcast(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	defer cancel()

	b.Broadcast("run:abc", []byte(`{"seq":1}`))

	select {
	case msg := <-ch:
		assert.JSONEq(t, `{"seq":1}`, string(msg))
	default:
		t.Fatal("expected a buffered notification")
	}
}

func TestBroker_FanOutToAllSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe("run:abc")
	defer cancel1()
	ch2, cancel2 := b.Subscribe("run:abc")
	defer cancel2()

	require.Equal(t, 2, b.subscriberCount("run:abc"))

	b.Broadcast("run:abc", []byte("payload"))

	assert.Equal(t, "payload", string(<-ch1))
	assert.Equal(t, "payload", string(<-ch2))
}

func TestBroker_ChannelIsolation(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	defer cancel()

	b.Broadcast("run:other", []byte("not for us"))
	b.Broadcast(RunsChannel, []byte("also not for us"))

	assert.Empty(t, ch, "subscriber should only receive its own channel")
}

func TestBroker_CancelClosesDeliveryChannel(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	require.Equal(t, 1, b.subscriberCount("run:abc"))

	cancel()

	_, open := <-ch
	assert.False(t, open, "cancel should close the delivery channel")
	assert.Equal(t, 0, b.subscriberCount("run:abc"))

	// Cancel is idempotent
	cancel()

	// Broadcasting after the last subscriber left must not panic.
	b.Broadcast("run:abc", []byte("into the void"))
}

func TestBroker_CancelDrainsPendingMessages(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	b.Broadcast("run:abc", []byte("one"))
	b.Broadcast("run:abc", []byte("two"))
	cancel()

	// Buffered messages remain readable after close; the closed channel
	// then yields the zero value.
	assert.Equal(t, "one", string(<-ch))
	assert.Equal(t, "two", string(<-ch))
	_, open := <-ch
	assert.False(t, open)
}

func TestBroker_SlowSubscriberLosesNotifications(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	defer cancel()

	// Fill the buffer without reading, then overflow it.
	for i := 0; i < subscriberBuffer+5; i++ {
		b.Broadcast("run:abc", fmt.Appendf(nil, "msg-%d", i))
	}

	// The first subscriberBuffer notifications are delivered in order;
	// the overflow is dropped, not blocked on.
	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, "msg-0", string(<-ch))
}

func TestBroker_WithoutListener(t *testing.T) {
	// A Broker with no NotifyListener wired still fans out local
	// broadcasts, as in unit tests and single-process setups.
	b := NewBroker()

	ch, cancel := b.Subscribe("run:abc")
	b.Broadcast("run:abc", []byte("local"))
	assert.Equal(t, "local", string(<-ch))

	cancel()
}
