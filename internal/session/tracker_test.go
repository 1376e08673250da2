package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abhisek/adaptic/internal/store"
)

// testClock is a manually advanced clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(t *testing.T, opts ...Option) (*Tracker, *store.MemStore, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	m := store.NewMemStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewTracker(m, log, opts...), m, clock
}

func TestTracker_StartIsIdempotent(t *testing.T) {
	tr, m, _ := newTestTracker(t)
	ctx := context.Background()

	first, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start again: %v", err)
	}
	if first != second {
		t.Errorf("second Start returned new session %s, want %s", second, first)
	}

	// Only one start event is audited.
	events, err := m.SessionEvents(ctx, "L1")
	if err != nil {
		t.Fatalf("SessionEvents: %v", err)
	}
	if len(events) != 1 || events[0].Action != "start" {
		t.Errorf("audit events = %+v, want single start", events)
	}
}

func TestTracker_ActiveTimeExcludesIdleGaps(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Two events 30s apart: both gaps count toward active time.
	clock.Advance(30 * time.Second)
	if err := tr.Record(id, Event{UnitID: "s1", Correct: true}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	clock.Advance(30 * time.Second)
	if err := tr.Record(id, Event{UnitID: "s1", Correct: true}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// A 10-minute gap exceeds the idle threshold and is excluded.
	clock.Advance(10 * time.Minute)
	if err := tr.Record(id, Event{UnitID: "s1", Correct: false}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	sum, err := tr.End(ctx, id)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if sum.ActiveSecs != 60 {
		t.Errorf("ActiveSecs = %d, want 60", sum.ActiveSecs)
	}
	if sum.ElapsedSecs != 11*60 {
		t.Errorf("ElapsedSecs = %d, want %d", sum.ElapsedSecs, 11*60)
	}
	if sum.EventCount != 3 {
		t.Errorf("EventCount = %d, want 3", sum.EventCount)
	}
}

func TestTracker_RecordAfterEndIsRejected(t *testing.T) {
	tr, m, _ := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := tr.End(ctx, id); err != nil {
		t.Fatalf("End: %v", err)
	}

	err = tr.Record(id, Event{UnitID: "s1"})
	var closed *ClosedError
	if !errors.As(err, &closed) {
		t.Fatalf("Record after end: err = %v, want ClosedError", err)
	}
	if _, err := tr.End(ctx, id); !errors.As(err, &closed) {
		t.Errorf("double End: err = %v, want ClosedError", err)
	}

	// The learner can start a fresh session afterwards.
	next, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start after end: %v", err)
	}
	if next == id {
		t.Error("new session reused the closed session id")
	}

	events, err := m.SessionEvents(ctx, "L1")
	if err != nil {
		t.Fatalf("SessionEvents: %v", err)
	}
	// start, end, start
	if len(events) != 3 || events[1].Action != "end" {
		t.Errorf("audit events = %+v, want start/end/start", events)
	}
}

func TestTracker_ReapIdle(t *testing.T) {
	tr, m, clock := newTestTracker(t)
	ctx := context.Background()

	idleID, err := tr.Start(ctx, "L-idle")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Advance(29 * time.Minute)
	busyID, err := tr.Start(ctx, "L-busy")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Advance(2 * time.Minute)

	n, err := tr.ReapIdle(ctx)
	if err != nil {
		t.Fatalf("ReapIdle: %v", err)
	}
	if n != 1 {
		t.Fatalf("ReapIdle closed %d sessions, want 1", n)
	}

	var closed *ClosedError
	if err := tr.Record(idleID, Event{}); !errors.As(err, &closed) {
		t.Errorf("idle session still accepts events: %v", err)
	}
	if err := tr.Record(busyID, Event{UnitID: "s1"}); err != nil {
		t.Errorf("busy session was reaped: %v", err)
	}

	events, err := m.SessionEvents(ctx, "L-idle")
	if err != nil {
		t.Fatalf("SessionEvents: %v", err)
	}
	if len(events) != 2 || events[1].Action != "end" {
		t.Errorf("idle learner audit = %+v, want start then end", events)
	}
}

func TestTracker_DifficultyPerSession(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	level, err := tr.Difficulty(id)
	if err != nil {
		t.Fatalf("Difficulty: %v", err)
	}
	if level != 3 {
		t.Errorf("initial difficulty = %d, want 3", level)
	}

	if err := tr.SetDifficulty(id, 4); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	sum, err := tr.End(ctx, id)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if sum.FinalDifficulty != 4 {
		t.Errorf("FinalDifficulty = %d, want 4", sum.FinalDifficulty)
	}
}

func TestTracker_RecentEventsBounded(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Start(ctx, "L1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		if err := tr.Record(id, Event{UnitID: "s1", Correct: i%2 == 0}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	last3, err := tr.RecentEvents(id, 3)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(last3) != 3 {
		t.Fatalf("len(RecentEvents) = %d, want 3", len(last3))
	}
	if !last3[2].Timestamp.After(last3[0].Timestamp) {
		t.Error("RecentEvents not ordered oldest first")
	}
}
