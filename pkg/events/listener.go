package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

const (
	// notifyPollInterval bounds one WaitForNotification call so the
	// connection loop regularly returns to service watch requests.
	notifyPollInterval = 100 * time.Millisecond
	redialInitialDelay = 1 * time.Second
	redialMaxDelay     = 30 * time.Second
)

var errListenerDown = errors.New("LISTEN connection not established")

// watchRequest asks the connection loop to add or drop a NOTIFY channel.
type watchRequest struct {
	channel string
	drop    bool
	reply   chan error
}

// NotifyListener owns the dedicated Postgres connection that receives
// NOTIFY traffic and hands every notification to the in-process Broker.
// A pgx connection is not safe for concurrent use, so the connection
// loop is the only goroutine that ever touches it; Subscribe and
// Unsubscribe funnel their LISTEN/UNLISTEN statements through watch
// requests that the loop executes between waits.
type NotifyListener struct {
	connString string
	broker     *Broker

	reqCh   chan watchRequest
	started atomic.Bool

	// watching mirrors the loop's active LISTEN set for de-duplication
	// and test polling. The loop is the only writer.
	watching   map[string]bool
	watchingMu sync.RWMutex

	stopLoop context.CancelFunc
	done     chan struct{}
}

// NewNotifyListener creates a listener for PostgreSQL NOTIFY traffic.
// NOTIFY/LISTEN is database-level, so connString should be the base
// connection string without a schema search_path.
func NewNotifyListener(connString string, broker *Broker) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		broker:     broker,
		reqCh:      make(chan watchRequest, 16),
		watching:   make(map[string]bool),
	}
}

// Start opens the dedicated connection and launches the connection loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("connecting for LISTEN: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.done = make(chan struct{})
	l.started.Store(true)
	go l.run(loopCtx, conn)

	slog.Info("LISTEN connection established")
	return nil
}

// Subscribe starts LISTEN for a channel. Subscribing a channel that is
// already active is a no-op, which lets every broker subscriber retry
// the LISTEN cheaply.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if l.isListening(channel) {
		return nil
	}
	if err := l.request(ctx, watchRequest{channel: channel}); err != nil {
		return err
	}
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe stops LISTEN for a channel. Channels that were never
// subscribed are ignored.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.isListening(channel) {
		return nil
	}
	return l.request(ctx, watchRequest{channel: channel, drop: true})
}

// isListening reports whether LISTEN is active for the channel.
// Unexported; tests use it to poll for LISTEN propagation.
func (l *NotifyListener) isListening(channel string) bool {
	l.watchingMu.RLock()
	defer l.watchingMu.RUnlock()
	return l.watching[channel]
}

// request hands one watch request to the connection loop and waits for
// its outcome. During a redial the request stays queued until the loop
// comes back, so the caller's context bounds the total wait.
func (l *NotifyListener) request(ctx context.Context, req watchRequest) error {
	if !l.started.Load() {
		return errListenerDown
	}
	req.reply = make(chan error, 1)
	select {
	case l.reqCh <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the connection loop. It alternates between servicing watch
// requests and waiting for notifications, redialing with backoff when
// the connection drops. active is the authoritative LISTEN set and is
// replayed onto every fresh connection.
func (l *NotifyListener) run(ctx context.Context, conn *pgx.Conn) {
	defer close(l.done)
	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	active := make(map[string]bool)
	for ctx.Err() == nil {
		if conn == nil {
			conn = l.redial(ctx, active)
			if conn == nil {
				return
			}
		}

		l.serviceRequests(ctx, conn, active)

		waitCtx, cancel := context.WithTimeout(ctx, notifyPollInterval)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case err == nil:
			l.broker.Broadcast(notification.Channel, []byte(notification.Payload))
		case ctx.Err() != nil:
			return
		case errors.Is(waitCtx.Err(), context.DeadlineExceeded):
			// Poll tick: loop back for pending watch requests.
		default:
			slog.Error("NOTIFY wait failed, redialing", "error", err)
			_ = conn.Close(ctx)
			conn = nil
		}
	}
}

// serviceRequests drains pending watch requests without blocking.
func (l *NotifyListener) serviceRequests(ctx context.Context, conn *pgx.Conn, active map[string]bool) {
	for {
		select {
		case req := <-l.reqCh:
			req.reply <- l.applyWatch(ctx, conn, active, req)
		default:
			return
		}
	}
}

// applyWatch executes one LISTEN or UNLISTEN and, on success, records
// the change in both the loop's active set and the shared mirror.
func (l *NotifyListener) applyWatch(ctx context.Context, conn *pgx.Conn, active map[string]bool, req watchRequest) error {
	verb := "LISTEN"
	if req.drop {
		verb = "UNLISTEN"
	}
	if _, err := conn.Exec(ctx, verb+" "+pgx.Identifier{req.channel}.Sanitize()); err != nil {
		return fmt.Errorf("%s %s: %w", verb, req.channel, err)
	}

	if req.drop {
		delete(active, req.channel)
	} else {
		active[req.channel] = true
	}
	l.watchingMu.Lock()
	if req.drop {
		delete(l.watching, req.channel)
	} else {
		l.watching[req.channel] = true
	}
	l.watchingMu.Unlock()
	return nil
}

// redial re-establishes the dedicated connection with exponential backoff
// and replays the active LISTEN set onto it. Returns nil only when ctx is
// cancelled.
func (l *NotifyListener) redial(ctx context.Context, active map[string]bool) *pgx.Conn {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = redialInitialDelay
	bo.MaxInterval = redialMaxDelay
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(bo.NextBackOff()):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN redial failed", "error", err)
			continue
		}
		for channel := range active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN after redial failed", "channel", channel, "error", err)
			}
		}
		slog.Info("NotifyListener reconnected", "channels", len(active))
		return conn
	}
}

// Stop shuts the connection loop down and waits for it to close the
// dedicated connection, giving up on the wait when ctx expires.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)
	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.done == nil {
		return
	}
	select {
	case <-l.done:
	case <-ctx.Done():
		slog.Warn("NotifyListener stop timed out waiting for connection loop")
	}
}
