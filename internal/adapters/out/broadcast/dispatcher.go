package broadcast

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"kitchen/internal/core/ports"
)

var (
	ErrQueueFull        = errors.New("broadcast queue is full")
	ErrDispatcherClosed = errors.New("broadcast dispatcher is closed")
)

const defaultPublishTimeout = 5 * time.Second

type envelope struct {
	ctx     context.Context
	topic   string
	payload any
}

// AsyncBroadcaster queues events and hands them to the wrapped sink from a
// single background worker, so a slow sink never delays a request. Events are
// delivered at most once: failures are logged and dropped.
type AsyncBroadcaster struct {
	next    ports.Broadcaster
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan envelope
	done   chan struct{}
}

func NewAsyncBroadcaster(next ports.Broadcaster, queueSize int, logger *slog.Logger) *AsyncBroadcaster {
	if queueSize < 1 {
		queueSize = 1
	}

	b := &AsyncBroadcaster{
		next:    next,
		logger:  logger.With("component", "broadcast_dispatcher"),
		timeout: defaultPublishTimeout,
		queue:   make(chan envelope, queueSize),
		done:    make(chan struct{}),
	}
	go b.run()
	return b
}

// Publish enqueues without blocking and returns ErrQueueFull on overflow;
// callers log it. The request context is detached from cancellation so
// delivery survives the end of the request.
func (b *AsyncBroadcaster) Publish(ctx context.Context, topic string, payload any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrDispatcherClosed
	}

	select {
	case b.queue <- envelope{ctx: context.WithoutCancel(ctx), topic: topic, payload: payload}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are delivered
// or ctx expires.
func (b *AsyncBroadcaster) Close(ctx context.Context) error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *AsyncBroadcaster) run() {
	defer close(b.done)

	for e := range b.queue {
		ctx, cancel := context.WithTimeout(e.ctx, b.timeout)
		if err := b.next.Publish(ctx, e.topic, e.payload); err != nil {
			b.logger.ErrorContext(ctx, "Broadcast failed", "topic", e.topic, "error", err)
		}
		cancel()
	}
}
