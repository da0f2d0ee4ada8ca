package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// subscriberBuffer is the per-subscriber delivery channel capacity. A
// subscriber that falls this far behind starts losing notifications and
// must backfill from the journal like any other missed delivery.
const subscriberBuffer = 64

// listenTimeout bounds how long a LISTEN command may block when a
// subscription triggers LISTEN on the dedicated connection. Without this,
// a stalled connection would block the subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// Broker fans notifications out from the NotifyListener to in-process
// subscribers. Each Go process (pod) has one Broker instance; the daemon
// and tests subscribe to observe the live run event stream.
type Broker struct {
	// Channel subscriptions: channel → subscriber id → delivery chan.
	// Fan-out sends are non-blocking and happen under mu, which is what
	// makes closing a delivery channel in unsubscribe race-free.
	subs   map[string]map[int]chan []byte
	nextID int
	mu     sync.Mutex

	// Wired in with SetListener once both halves exist; nil means no
	// LISTEN management, which unit tests rely on.
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewBroker creates a new Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[int]chan []byte)}
}

// SetListener attaches the listener whose LISTEN set the broker manages
// as subscribers come and go. Called once during startup.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers a subscriber for a channel and returns the delivery
// channel plus a cancel function. Cancelling closes the delivery channel
// and, for the last subscriber of a channel, stops the underlying LISTEN.
//
// Delivery is lossy under backpressure: when a subscriber's buffer is
// full the notification is dropped with a warning. The journal remains
// authoritative, so a dropped notification is recoverable.
func (b *Broker) Subscribe(channel string) (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	if _, exists := b.subs[channel]; !exists {
		b.subs[channel] = make(map[int]chan []byte)
	}
	id := b.nextID
	b.nextID++
	b.subs[channel][id] = ch
	b.mu.Unlock()

	// Every subscriber attempts LISTEN; the listener de-duplicates, so
	// this is a map lookup when the channel is already active and a retry
	// when an earlier subscriber's LISTEN failed.
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l != nil {
		listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		if err := l.Subscribe(listenCtx, channel); err != nil {
			slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
		}
	}

	var once sync.Once
	cancelFn := func() {
		once.Do(func() { b.unsubscribe(channel, id, ch) })
	}
	return ch, cancelFn
}

// Broadcast delivers a notification payload to every subscriber of the
// channel. Called by the NotifyListener receive loop. Sends never block:
// subscribers with a full buffer lose the notification.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs[channel] {
		select {
		case ch <- payload:
		default:
			slog.Warn("Dropping notification for slow subscriber",
				"channel", channel, "subscriber", id)
		}
	}
}

// subscriberCount is how many subscribers a channel currently has.
// Tests poll it instead of sleeping.
func (b *Broker) subscriberCount(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[channel])
}

// unsubscribe removes a subscriber, closes its delivery channel, and
// stops LISTEN if it was the channel's last subscriber.
func (b *Broker) unsubscribe(channel string, id int, ch chan []byte) {
	b.mu.Lock()
	last := false
	if subs, exists := b.subs[channel]; exists {
		delete(subs, id)
		if len(subs) == 0 {
			delete(b.subs, channel)
			last = true
		}
	}
	// Closing under mu: Broadcast holds mu for its non-blocking sends, so
	// no send can land on ch after this close.
	close(ch)
	b.mu.Unlock()

	if !last {
		return
	}

	// Last subscriber left, so stop LISTEN. The goroutine re-checks b.subs
	// before issuing UNLISTEN to prevent a race where a rapid
	// unsubscribe/resubscribe cycle would drop the LISTEN:
	//   subscribe → LISTEN active
	//   unsubscribe → goroutine: UNLISTEN (deferred)
	//   resubscribe → channel re-added to b.subs
	//   goroutine → sees resubscribed → skips UNLISTEN
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		b.mu.Lock()
		_, resubscribed := b.subs[channel]
		b.mu.Unlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}
