package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/adaptic/internal/coordinator"
	"github.com/abhisek/adaptic/internal/events"
	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/progress"
	"github.com/abhisek/adaptic/internal/session"
	"github.com/abhisek/adaptic/internal/store"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUnits(t *testing.T) *hierarchy.Holder {
	t.Helper()
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Children: []string{"l1"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1", "s2"}},
		{ID: "s1", Kind: hierarchy.KindSection, Objective: "o1"},
		{ID: "s2", Kind: hierarchy.KindSection, Prerequisites: []string{"s1"}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return hierarchy.NewHolder(snap)
}

func testEngine(t *testing.T, opts ...Option) (*Engine, *store.MemStore) {
	t.Helper()
	m := store.NewMemStore()
	e := New(m, testUnits(t), nil, discardLog(), opts...)
	t.Cleanup(func() { e.Close() })
	return e, m
}

type collector struct {
	mu   sync.Mutex
	seen []events.Event
}

func (c *collector) handle(ev events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, ev)
	return nil
}

func (c *collector) waitFor(t *testing.T, n int) []events.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		c.mu.Lock()
		if len(c.seen) >= n {
			out := make([]events.Event, len(c.seen))
			copy(out, c.seen)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d events", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func fp(v float64) *float64 { return &v }

func TestEngine_SubmitRollsUpProgress(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	res, err := e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		UnitID:    "s1",
		Fraction:  fp(1.0),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.SessionID == "" {
		t.Error("no session was started for the event")
	}

	got := map[string]float64{}
	for _, rec := range res.Records {
		got[rec.UnitID] = rec.Fraction
	}
	want := map[string]float64{"s1": 1.0, "l1": 0.5, "c1": 0.5}
	for unit, frac := range want {
		if got[unit] != frac {
			t.Errorf("fraction[%s] = %v, want %v", unit, got[unit], frac)
		}
	}
}

func TestEngine_DuplicateEventDoesNotDoubleCount(t *testing.T) {
	e, m := testEngine(t)
	ctx := context.Background()

	ev := InteractionEvent{
		EventID:       "ev-1",
		LearnerID:     "L1",
		UnitID:        "s1",
		Fraction:      fp(0.5),
		TimeSpentSecs: 30,
	}
	first, err := e.Submit(ctx, ev)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := e.Submit(ctx, ev)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if second.EventID != first.EventID || len(second.Records) != len(first.Records) {
		t.Errorf("duplicate result differs: %+v vs %+v", second, first)
	}

	rec, err := m.GetRecord(ctx, "L1", "s1")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if rec.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1 (duplicate must not reapply)", rec.Attempts)
	}
	if rec.TimeSpentSecs != 30 {
		t.Errorf("TimeSpentSecs = %d, want 30", rec.TimeSpentSecs)
	}
}

func TestEngine_RejectsUnknownUnit(t *testing.T) {
	e, _ := testEngine(t)

	_, err := e.Submit(context.Background(), InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		UnitID:    "nope",
	})
	var verr *progress.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestEngine_MasteryAchievedPublishedOnce(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	var achieved collector
	if err := e.Bus().Subscribe(events.TypeMasteryAchieved, achieved.handle); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	// Consistent strong evidence: confidence crosses 0.85 at the sixth
	// piece (1 - 1/7), level stays 0.9.
	var last *CommitResult
	for i := 0; i < 7; i++ {
		res, err := e.Submit(ctx, InteractionEvent{
			EventID:     fmt.Sprintf("ev-%d", i),
			LearnerID:   "L1",
			UnitID:      "s1",
			ObjectiveID: "o1",
			Score:       fp(0.9),
		})
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if res.Mastery == nil {
			t.Fatalf("submit %d: no mastery decision", i)
		}
		last = res
	}

	if last.Mastery.Decision != "achieved" {
		t.Errorf("final decision = %s, want achieved", last.Mastery.Decision)
	}
	got := achieved.waitFor(t, 1)
	ma, ok := got[0].(events.MasteryAchieved)
	if !ok {
		t.Fatalf("event type = %T, want MasteryAchieved", got[0])
	}
	if ma.ObjectiveID != "o1" {
		t.Errorf("ObjectiveID = %s, want o1", ma.ObjectiveID)
	}

	// The seventh submission kept the pinned achieved decision but must
	// not re-announce it.
	time.Sleep(50 * time.Millisecond)
	if n := achieved.count(); n != 1 {
		t.Errorf("MasteryAchieved published %d times, want 1", n)
	}
}

func TestEngine_StrugglingWindowLowersDifficulty(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	var adapted collector
	if err := e.Bus().Subscribe(events.TypeDifficultyAdapted, adapted.handle); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	var decisions int
	for i := 0; i < 3; i++ {
		res, err := e.Submit(ctx, InteractionEvent{
			EventID:   fmt.Sprintf("ev-%d", i),
			LearnerID: "L1",
			UnitID:    "s1",
			Answered:  true,
			Correct:   false,
		})
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if res.Adaptation != nil {
			decisions++
			if res.Adaptation.FromDifficulty != 3 || res.Adaptation.ToDifficulty != 2 {
				t.Errorf("adaptation %d→%d, want 3→2",
					res.Adaptation.FromDifficulty, res.Adaptation.ToDifficulty)
			}
		}
	}
	if decisions != 1 {
		t.Errorf("adaptation fired %d times over one window, want 1", decisions)
	}

	got := adapted.waitFor(t, 1)
	da, ok := got[0].(events.DifficultyAdapted)
	if !ok {
		t.Fatalf("event type = %T, want DifficultyAdapted", got[0])
	}
	if da.ToDifficulty != 2 {
		t.Errorf("event ToDifficulty = %d, want 2", da.ToDifficulty)
	}
}

type denyAll struct{}

func (denyAll) PersonalizationAllowed(context.Context, string) bool { return false }

func TestEngine_ConsentGatesAdaptation(t *testing.T) {
	e, _ := testEngine(t, WithConsentPolicy(denyAll{}))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := e.Submit(ctx, InteractionEvent{
			EventID:   fmt.Sprintf("ev-%d", i),
			LearnerID: "L1",
			UnitID:    "s1",
			Answered:  true,
			Correct:   false,
		})
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if res.Adaptation != nil {
			t.Fatal("adaptation fired for a learner without personalization consent")
		}
	}

	// Progress still tracks for the same learner.
	rec, err := e.UnitProgress(ctx, "L1", "s1")
	if err != nil {
		t.Fatalf("UnitProgress: %v", err)
	}
	if rec == nil || rec.Attempts != 3 {
		t.Errorf("record = %+v, want 3 attempts", rec)
	}
}

func TestEngine_EndedSessionRejectsEvents(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	id, err := e.StartSession(ctx, "L1")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if again, _ := e.StartSession(ctx, "L1"); again != id {
		t.Errorf("second StartSession = %s, want existing %s", again, id)
	}

	sum, err := e.EndSession(ctx, id)
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if sum.SessionID != id {
		t.Errorf("summary session = %s, want %s", sum.SessionID, id)
	}

	_, err = e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		SessionID: id,
		UnitID:    "s1",
	})
	var closed *session.ClosedError
	if !errors.As(err, &closed) {
		t.Fatalf("err = %v, want ClosedError", err)
	}
}

func TestEngine_RejectedEventLeavesSessionUntouched(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	id, err := e.StartSession(ctx, "L1")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// s2 is gated on s1, which has no progress yet.
	_, err = e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		SessionID: id,
		UnitID:    "s2",
		Fraction:  fp(0.5),
		Answered:  true,
		Correct:   true,
	})
	var unmet *progress.PrerequisiteUnmetError
	if !errors.As(err, &unmet) {
		t.Fatalf("err = %v, want PrerequisiteUnmetError", err)
	}

	sum, err := e.EndSession(ctx, id)
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if sum.EventCount != 0 {
		t.Errorf("EventCount = %d after a rejected event, want 0", sum.EventCount)
	}
}

// flakyStore fails the first n transactions with a transient error, as
// a flapping backend would.
type flakyStore struct {
	store.Store
	mu       sync.Mutex
	failures int
}

func (f *flakyStore) WithinTx(ctx context.Context, fn func(store.Store) error) error {
	f.mu.Lock()
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return &store.UnavailableError{Err: errors.New("backend flapping")}
	}
	f.mu.Unlock()
	return f.Store.WithinTx(ctx, fn)
}

func TestEngine_RetriedEventCountsOnceInSession(t *testing.T) {
	flaky := &flakyStore{Store: store.NewMemStore(), failures: 1}
	e := New(flaky, testUnits(t), nil, discardLog(),
		WithCoordinatorOptions(coordinator.WithRetry(3, time.Millisecond)))
	t.Cleanup(func() { e.Close() })
	ctx := context.Background()

	id, err := e.StartSession(ctx, "L1")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// First attempt fails in the transaction, the retry commits. The
	// session must count the event exactly once.
	if _, err := e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		SessionID: id,
		UnitID:    "s1",
		Fraction:  fp(0.5),
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// This one exhausts the retry budget and never commits; it must not
	// count at all.
	flaky.mu.Lock()
	flaky.failures = 3
	flaky.mu.Unlock()
	_, err = e.Submit(ctx, InteractionEvent{
		EventID:   "ev-2",
		LearnerID: "L1",
		SessionID: id,
		UnitID:    "s1",
		Fraction:  fp(0.8),
	})
	var failed *coordinator.CommitFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want CommitFailedError", err)
	}

	sum, err := e.EndSession(ctx, id)
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if sum.EventCount != 1 {
		t.Errorf("EventCount = %d, want 1 (one committed event)", sum.EventCount)
	}
}

func TestEngine_ResetLearnerWipesState(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	if _, err := e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		UnitID:    "s1",
		Fraction:  fp(0.4),
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := e.ResetLearner(ctx, "L1"); err != nil {
		t.Fatalf("ResetLearner: %v", err)
	}
	recs, err := e.Progress(ctx, "L1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("records after reset = %d, want 0", len(recs))
	}

	// The reset also cleared the commit log: the same event ID applies
	// fresh.
	res, err := e.Submit(ctx, InteractionEvent{
		EventID:   "ev-1",
		LearnerID: "L1",
		UnitID:    "s1",
		Fraction:  fp(0.6),
	})
	if err != nil {
		t.Fatalf("resubmit after reset: %v", err)
	}
	if res.Records[0].Fraction != 0.6 {
		t.Errorf("fraction = %v, want 0.6", res.Records[0].Fraction)
	}
}
