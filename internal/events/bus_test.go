package events

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testBus() *Bus {
	return NewBus(4, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// collector gathers delivered events behind a mutex and lets tests wait
// for an expected count.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handle(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *collector) waitFor(t *testing.T, n int) []Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		if len(c.events) >= n {
			out := make([]Event, len(c.events))
			copy(out, c.events)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events", n)
	return nil
}

func TestBus_DeliversByType(t *testing.T) {
	b := testBus()
	defer b.Close()

	var progress, mastery collector
	if err := b.Subscribe(TypeProgressChanged, progress.handle); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := b.Subscribe(TypeMasteryAchieved, mastery.handle); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	now := time.Now()
	if err := b.Publish(NewProgressChanged("L1", []string{"s1", "l1"}, now)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := b.Publish(NewMasteryAchieved("L1", "o1", 0.9, 0.88, now)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	got := progress.waitFor(t, 1)
	pc, ok := got[0].(ProgressChanged)
	if !ok {
		t.Fatalf("progress handler got %T", got[0])
	}
	if len(pc.UnitIDs) != 2 || pc.UnitIDs[0] != "s1" {
		t.Errorf("UnitIDs = %v, want [s1 l1]", pc.UnitIDs)
	}
	if pc.Version != 1 {
		t.Errorf("Version = %d, want 1", pc.Version)
	}

	ma := mastery.waitFor(t, 1)[0].(MasteryAchieved)
	if ma.ObjectiveID != "o1" {
		t.Errorf("ObjectiveID = %s, want o1", ma.ObjectiveID)
	}
}

func TestBus_SubscribeAllSeesEverything(t *testing.T) {
	b := testBus()
	defer b.Close()

	var all collector
	if err := b.SubscribeAll(all.handle); err != nil {
		t.Fatalf("SubscribeAll: %v", err)
	}

	now := time.Now()
	b.Publish(NewProgressChanged("L1", []string{"s1"}, now))
	b.Publish(NewDifficultyAdapted("L1", "sess-1", "struggling_pattern", 3, 2, "", now))

	all.waitFor(t, 2)
}

func TestBus_HandlerErrorDoesNotFailPublish(t *testing.T) {
	b := testBus()
	defer b.Close()

	if err := b.SubscribeAll(func(Event) error { return errors.New("boom") }); err != nil {
		t.Fatalf("SubscribeAll: %v", err)
	}
	if err := b.Publish(NewProgressChanged("L1", []string{"s1"}, time.Now())); err != nil {
		t.Errorf("Publish returned handler error: %v", err)
	}
}

func TestBus_PublishRacingCloseIsSafe(t *testing.T) {
	b := testBus()
	if err := b.SubscribeAll(func(Event) error { return nil }); err != nil {
		t.Fatalf("SubscribeAll: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := b.Publish(NewProgressChanged("L1", nil, time.Now())); err != nil {
					return
				}
			}
		}()
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wg.Wait()
}

func TestBus_ClosedBusRejectsPublish(t *testing.T) {
	b := testBus()
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Publish(NewProgressChanged("L1", nil, time.Now())); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Publish on closed bus: err = %v, want ErrBusClosed", err)
	}
	if err := b.Subscribe(TypeProgressChanged, func(Event) error { return nil }); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Subscribe on closed bus: err = %v, want ErrBusClosed", err)
	}
}
