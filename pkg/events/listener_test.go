package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	broker := NewBroker()
	listener := NewNotifyListener("host=localhost dbname=test", broker)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.watching)
	assert.Equal(t, broker, listener.broker)
}

func TestNotifyListener_ChannelTrackingWithoutConnection(t *testing.T) {
	// Without calling Start(), the listener has no connection.
	// Subscribe/Unsubscribe should return errors gracefully.
	broker := NewBroker()
	listener := NewNotifyListener("host=localhost dbname=test", broker)

	t.Run("subscribe without connection returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "test-channel")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe without connection is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "test-channel")
		assert.NoError(t, err) // Not listening, so no-op
	})

	t.Run("isListening is false before any subscribe", func(t *testing.T) {
		assert.False(t, listener.isListening("test-channel"))
	})
}
