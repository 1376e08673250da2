// Package coordinator serializes mutating events per learner. Events
// for one learner apply strictly in submission order; distinct learners
// proceed in parallel across a fixed worker pool partitioned by learner
// ID hash, so no global lock is needed.
package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/abhisek/adaptic/internal/store"
)

const (
	// DefaultWorkers is the worker pool size.
	DefaultWorkers = 8

	// DefaultMaxAttempts bounds retries when the store is unavailable.
	DefaultMaxAttempts = 3

	// DefaultRetryWait is the initial backoff; it doubles per attempt.
	DefaultRetryWait = 50 * time.Millisecond

	queueDepth = 64
)

// Apply performs one event's full state transition. It runs exactly
// once per committed event, inside the submitting learner's serial
// slot, and must be transactional: all of its writes commit or none do.
type Apply func(ctx context.Context) (json.RawMessage, error)

type task struct {
	ctx       context.Context
	learnerID string
	eventID   string
	apply     Apply
	done      chan result
}

type result struct {
	payload json.RawMessage
	err     error
}

// Coordinator owns the worker pool and the commit log that makes
// resubmission idempotent.
type Coordinator struct {
	commits     store.CommitRepo
	log         *slog.Logger
	maxAttempts int
	retryWait   time.Duration
	clock       func() time.Time

	queues  []chan *task
	wg      sync.WaitGroup
	closeMu sync.Mutex
	closed  bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers sets the pool size.
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.queues = make([]chan *task, n)
		}
	}
}

// WithRetry sets the bounded retry policy for store failures.
func WithRetry(maxAttempts int, initialWait time.Duration) Option {
	return func(c *Coordinator) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		if initialWait > 0 {
			c.retryWait = initialWait
		}
	}
}

// New creates and starts a Coordinator.
func New(commits store.CommitRepo, log *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		commits:     commits,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
		retryWait:   DefaultRetryWait,
		clock:       time.Now,
		queues:      make([]chan *task, DefaultWorkers),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i := range c.queues {
		c.queues[i] = make(chan *task, queueDepth)
		c.wg.Add(1)
		go c.worker(c.queues[i])
	}
	return c
}

// Submit queues an event for the learner and blocks until it is
// committed, rejected, or ctx is done. Resubmitting an already
// committed event ID returns the stored result without reapplying.
func (c *Coordinator) Submit(ctx context.Context, learnerID, eventID string, apply Apply) (json.RawMessage, error) {
	if learnerID == "" {
		return nil, errors.New("coordinator: empty learner id")
	}
	if eventID == "" {
		return nil, errors.New("coordinator: empty event id")
	}

	t := &task{
		ctx:       ctx,
		learnerID: learnerID,
		eventID:   eventID,
		apply:     apply,
		done:      make(chan result, 1),
	}

	c.closeMu.Lock()
	if c.closed {
		c.closeMu.Unlock()
		return nil, errors.New("coordinator: closed")
	}
	queue := c.queues[xxhash.Sum64String(learnerID)%uint64(len(c.queues))]
	c.closeMu.Unlock()

	select {
	case queue <- t:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-t.done:
		return r.payload, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Coordinator) worker(queue chan *task) {
	defer c.wg.Done()
	for t := range queue {
		payload, err := c.process(t)
		t.done <- result{payload: payload, err: err}
	}
}

func (c *Coordinator) process(t *task) (json.RawMessage, error) {
	ctx := t.ctx
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// At-least-once delivery makes duplicates normal; the commit log
	// turns them into no-ops.
	if prior, err := c.commits.GetCommit(ctx, t.eventID); err == nil && prior != nil {
		c.log.Debug("duplicate event replayed from commit log", "event", t.eventID, "learner", t.learnerID)
		return prior.Result, nil
	}

	var lastErr error
	wait := c.retryWait
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		payload, err := t.apply(ctx)
		if err == nil {
			if commitErr := c.commits.PutCommit(ctx, &store.CommitRecordData{
				EventID:     t.eventID,
				LearnerID:   t.learnerID,
				Result:      payload,
				CommittedAt: c.clock(),
			}); commitErr != nil {
				c.log.Warn("commit record write failed", "event", t.eventID, "err", commitErr)
			}
			return payload, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}
		if attempt == c.maxAttempts {
			break
		}

		c.log.Warn("event apply failed, retrying",
			"event", t.eventID,
			"learner", t.learnerID,
			"attempt", attempt,
			"err", err)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		wait *= 2
	}

	return nil, &CommitFailedError{
		EventID:  t.eventID,
		Attempts: c.maxAttempts,
		Err:      lastErr,
	}
}

// retryable: store outages and write conflicts are transient; domain
// rejections (validation, prerequisites, closed session) are final.
func retryable(err error) bool {
	var unavailable *store.UnavailableError
	if errors.As(err, &unavailable) {
		return true
	}
	var conflict *store.ConflictError
	return errors.As(err, &conflict)
}

// Close drains the queues and stops the workers. In-flight events
// finish; new submissions are rejected.
func (c *Coordinator) Close() {
	c.closeMu.Lock()
	if c.closed {
		c.closeMu.Unlock()
		return
	}
	c.closed = true
	c.closeMu.Unlock()

	for _, q := range c.queues {
		close(q)
	}
	c.wg.Wait()
}
