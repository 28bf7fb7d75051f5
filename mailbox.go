package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

const (
	// DefaultMailboxBuffer is the default number of notifications a
	// mailbox queues before Deliver reports ErrMailboxFull.
	DefaultMailboxBuffer = 100
)

// Mailbox decouples notification delivery from handling. Publish
// actions stay synchronous and cheap: they enqueue into the mailbox
// and return, while the observer drains Receive at its own pace.
//
// Delivery is non-blocking. When the buffer is full the notification
// is dropped with ErrMailboxFull rather than stalling the publisher,
// so a slow consumer never holds up a Publish call.
//
// Example:
//
//	box := notify.NewMailbox(notify.WithMailboxBuffer(64))
//	defer box.Close()
//
//	go func() {
//	    for observer := range box.Receive() {
//	        observer.(ShipmentObserver).ShipmentShipped(order)
//	    }
//	}()
//
//	center.Publish("order.shipped", nil, box.Action(ctx))
type Mailbox struct {
	ch     chan any
	logger *slog.Logger
	mu     sync.RWMutex
	closed bool
}

// MailboxOption configures a Mailbox.
type MailboxOption func(*Mailbox)

// WithMailboxBuffer sets the buffer size for the mailbox queue.
// Default is DefaultMailboxBuffer.
func WithMailboxBuffer(size int) MailboxOption {
	return func(m *Mailbox) {
		if size > 0 {
			m.ch = make(chan any, size)
		}
	}
}

// WithMailboxLogger configures structured logging for the mailbox.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithMailboxLogger(logger *slog.Logger) MailboxOption {
	return func(m *Mailbox) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMailbox creates a mailbox with a buffered notification queue.
func NewMailbox(opts ...MailboxOption) *Mailbox {
	m := &Mailbox{
		ch:     make(chan any, DefaultMailboxBuffer),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Deliver enqueues v without blocking. It returns ErrMailboxClosed
// after Close, ErrMailboxFull when the buffer has no room, and the
// context error when ctx is already done.
func (m *Mailbox) Deliver(ctx context.Context, v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrMailboxClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case m.ch <- v:
		m.logger.DebugContext(ctx, "notification queued",
			slog.Int("queued", len(m.ch)))
		return nil
	default:
		return ErrMailboxFull
	}
}

// Receive returns a read-only channel of queued notifications. The
// channel is closed by Close.
func (m *Mailbox) Receive() <-chan any {
	return m.ch
}

// Close shuts the mailbox down. Notifications already queued remain
// readable from Receive until drained; subsequent Deliver calls return
// ErrMailboxClosed, as does a repeated Close.
func (m *Mailbox) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrMailboxClosed
	}

	m.closed = true
	close(m.ch)
	m.logger.Info("mailbox closed")
	return nil
}

// Action adapts the mailbox to a Publish action: each matching
// observer is enqueued for asynchronous handling. Deliveries that fail
// because the mailbox is closed or full are logged and dropped.
func (m *Mailbox) Action(ctx context.Context) Action {
	return func(observer any) {
		if err := m.Deliver(ctx, observer); err != nil {
			m.logger.WarnContext(ctx, "notification dropped",
				slog.Any("error", err))
		}
	}
}
