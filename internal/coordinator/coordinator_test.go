package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abhisek/adaptic/internal/store"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCoordinator(m store.CommitRepo, opts ...Option) *Coordinator {
	base := []Option{WithRetry(3, time.Millisecond)}
	return New(m, discardLog(), append(base, opts...)...)
}

func TestCoordinator_SerializesPerLearner(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore(), WithWorkers(4))
	defer c.Close()
	ctx := context.Background()

	// Concurrent submissions for one learner must apply one at a time.
	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Submit(ctx, "L1", fmt.Sprintf("ev-%d", i), func(context.Context) (json.RawMessage, error) {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					cur := atomic.LoadInt32(&maxInFlight)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInFlight, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return json.RawMessage(`{}`), nil
			})
			if err != nil {
				t.Errorf("Submit: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := atomic.LoadInt32(&maxInFlight); got != 1 {
		t.Errorf("max concurrent applies for one learner = %d, want 1", got)
	}
}

func TestCoordinator_DuplicateEventIsIdempotent(t *testing.T) {
	m := store.NewMemStore()
	c := newTestCoordinator(m)
	defer c.Close()
	ctx := context.Background()

	var applies int32
	apply := func(context.Context) (json.RawMessage, error) {
		atomic.AddInt32(&applies, 1)
		return json.RawMessage(`{"fraction":0.5}`), nil
	}

	first, err := c.Submit(ctx, "L1", "ev-1", apply)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := c.Submit(ctx, "L1", "ev-1", apply)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	if atomic.LoadInt32(&applies) != 1 {
		t.Errorf("apply ran %d times, want 1", applies)
	}
	if string(first) != string(second) {
		t.Errorf("duplicate returned %s, want stored result %s", second, first)
	}
}

func TestCoordinator_RetriesTransientStoreFailure(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore())
	defer c.Close()
	ctx := context.Background()

	var attempts int32
	payload, err := c.Submit(ctx, "L1", "ev-1", func(context.Context) (json.RawMessage, error) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return nil, &store.UnavailableError{Err: errors.New("disk full")}
		}
		return json.RawMessage(`{}`), nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if payload == nil {
		t.Fatal("nil payload")
	}
	if atomic.LoadInt32(&attempts) != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestCoordinator_ExhaustedRetriesReportCommitFailed(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore())
	defer c.Close()
	ctx := context.Background()

	var attempts int32
	_, err := c.Submit(ctx, "L1", "ev-1", func(context.Context) (json.RawMessage, error) {
		atomic.AddInt32(&attempts, 1)
		return nil, &store.UnavailableError{Err: errors.New("still down")}
	})

	var failed *CommitFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want CommitFailedError", err)
	}
	if failed.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", failed.Attempts)
	}
	if atomic.LoadInt32(&attempts) != 3 {
		t.Errorf("apply attempts = %d, want 3", attempts)
	}
}

func TestCoordinator_DomainErrorsAreNotRetried(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore())
	defer c.Close()
	ctx := context.Background()

	domainErr := errors.New("prerequisites unmet")
	var attempts int32
	_, err := c.Submit(ctx, "L1", "ev-1", func(context.Context) (json.RawMessage, error) {
		atomic.AddInt32(&attempts, 1)
		return nil, domainErr
	})
	if !errors.Is(err, domainErr) {
		t.Fatalf("err = %v, want the domain error unchanged", err)
	}
	if atomic.LoadInt32(&attempts) != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}

	// A rejected event is not committed; retrying runs apply again.
	if _, err := c.Submit(ctx, "L1", "ev-1", func(context.Context) (json.RawMessage, error) {
		atomic.AddInt32(&attempts, 1)
		return json.RawMessage(`{}`), nil
	}); err != nil {
		t.Fatalf("resubmit after rejection: %v", err)
	}
	if atomic.LoadInt32(&attempts) != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestCoordinator_DistinctLearnersRunInParallel(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore(), WithWorkers(8))
	defer c.Close()
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan string, 2)

	var wg sync.WaitGroup
	// Learner IDs chosen freely; with 8 workers most pairs land on
	// different partitions, but the test only needs both to start.
	for _, learner := range []string{"alpha", "golf"} {
		wg.Add(1)
		go func(l string) {
			defer wg.Done()
			c.Submit(ctx, l, "ev-"+l, func(context.Context) (json.RawMessage, error) {
				started <- l
				<-release
				return json.RawMessage(`{}`), nil
			})
		}(learner)
	}

	seen := map[string]bool{}
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case l := <-started:
			seen[l] = true
		case <-timeout:
			// Both landed on one partition; serial execution is still
			// correct, just release and finish.
			close(release)
			wg.Wait()
			t.Skip("learners hashed to the same partition")
		}
	}
	close(release)
	wg.Wait()
}

func TestCoordinator_ClosedRejectsSubmissions(t *testing.T) {
	c := newTestCoordinator(store.NewMemStore())
	c.Close()

	_, err := c.Submit(context.Background(), "L1", "ev-1", func(context.Context) (json.RawMessage, error) {
		return nil, nil
	})
	if err == nil {
		t.Fatal("Submit on closed coordinator succeeded")
	}
}
