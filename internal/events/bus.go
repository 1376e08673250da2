package events

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrBusClosed is returned for operations on a closed bus.
var ErrBusClosed = errors.New("event bus is closed")

// Handler processes one emitted event. Handlers must not block for
// long; slow consumers should buffer internally.
type Handler func(Event) error

// Bus is an in-memory publish/subscribe bus. Handlers run on a bounded
// worker pool so publishing never blocks the commit path.
type Bus struct {
	mu          sync.RWMutex
	handlers    map[Type][]Handler
	allHandlers []Handler
	workers     chan struct{}
	log         *slog.Logger
	closed      bool
	closeCh     chan struct{}
	wg          sync.WaitGroup
}

// NewBus creates a Bus with the given worker pool size.
func NewBus(workerPoolSize int, log *slog.Logger) *Bus {
	if workerPoolSize <= 0 {
		workerPoolSize = 8
	}
	return &Bus{
		handlers: make(map[Type][]Handler),
		workers:  make(chan struct{}, workerPoolSize),
		log:      log,
		closeCh:  make(chan struct{}),
	}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(t Type, h Handler) error {
	if h == nil {
		return errors.New("handler cannot be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.handlers[t] = append(b.handlers[t], h)
	return nil
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) error {
	if h == nil {
		return errors.New("handler cannot be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.allHandlers = append(b.allHandlers, h)
	return nil
}

// Publish delivers an event to all matching handlers asynchronously.
// Handler errors are logged, never propagated: downstream consumers
// cannot fail a committed state transition.
func (b *Bus) Publish(ev Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := make([]Handler, 0, len(b.handlers[ev.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[ev.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	// The Add must happen before the lock is released: Close waits on
	// the group only after taking the write lock, so an Add done here
	// can never race that Wait.
	b.wg.Add(len(handlers))
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ev, h)
	}
	return nil
}

func (b *Bus) dispatch(ev Event, h Handler) {
	go func() {
		defer b.wg.Done()
		select {
		case b.workers <- struct{}{}:
			defer func() { <-b.workers }()
		case <-b.closeCh:
			return
		}
		if err := h(ev); err != nil {
			b.log.Error("event handler failed", "type", ev.EventType(), "learner", ev.Learner(), "err", err)
		}
	}()
}

// Close stops the bus after in-flight handlers finish.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.closeCh)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
