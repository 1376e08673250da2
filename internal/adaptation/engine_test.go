package adaptation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

// stubRecommender returns a fixed unit, or blocks until ctx is done.
type stubRecommender struct {
	unitID string
	err    error
	block  bool
}

func (r *stubRecommender) Recommend(ctx context.Context, _ *hierarchy.Snapshot, _ string, _ int, _ string) (string, error) {
	if r.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return r.unitID, r.err
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(rec Recommender, audit store.AuditRepo, opts ...Option) *Engine {
	return NewEngine(rec, audit, discardLog(), opts...)
}

func wrong() Signal {
	return Signal{UnitID: "s1", Correct: false, ResponseMs: 5000, ExpectedMs: 4000, Fraction: 0.5}
}

func slow() Signal {
	return Signal{UnitID: "s1", Correct: true, ResponseMs: 9000, ExpectedMs: 4000, Fraction: 0.5}
}

func fastCorrect() Signal {
	return Signal{UnitID: "s1", Correct: true, ResponseMs: 2000, ExpectedMs: 4000, Fraction: 0.5}
}

func TestEngine_StrugglingWindowLowersDifficulty(t *testing.T) {
	m := store.NewMemStore()
	e := newTestEngine(&stubRecommender{unitID: "s-easy"}, m)
	ctx := context.Background()

	// Incorrect and correct-but-slow both count as struggling.
	signals := []Signal{wrong(), slow(), wrong()}
	var d *Decision
	for i, sig := range signals {
		var err error
		d, err = e.Observe(ctx, nil, "sess-1", "L1", 3, sig)
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if i < len(signals)-1 && d != nil {
			t.Fatalf("adjustment fired early at signal %d: %+v", i, d)
		}
	}

	if d == nil {
		t.Fatal("no decision after full struggling window")
	}
	if d.Reason != ReasonStruggling {
		t.Errorf("Reason = %s, want struggling_pattern", d.Reason)
	}
	if d.FromDifficulty != 3 || d.ToDifficulty != 2 {
		t.Errorf("adjustment %d→%d, want 3→2", d.FromDifficulty, d.ToDifficulty)
	}
	if d.RecommendedUnitID != "s-easy" {
		t.Errorf("RecommendedUnitID = %q, want s-easy", d.RecommendedUnitID)
	}
	if len(d.Window) != 3 {
		t.Errorf("len(Window) = %d, want 3", len(d.Window))
	}

	events, err := m.AdaptationEvents(ctx, "L1")
	if err != nil {
		t.Fatalf("AdaptationEvents: %v", err)
	}
	if len(events) != 1 || events[0].Reason != ReasonStruggling {
		t.Errorf("audit = %+v, want one struggling event", events)
	}
}

func TestEngine_MasteryWindowRaisesDifficulty(t *testing.T) {
	m := store.NewMemStore()
	e := newTestEngine(&stubRecommender{unitID: "s-hard"}, m)
	ctx := context.Background()

	var d *Decision
	for i := 0; i < 3; i++ {
		var err error
		d, err = e.Observe(ctx, nil, "sess-1", "L1", 3, fastCorrect())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if d == nil {
		t.Fatal("no decision after fast-correct window")
	}
	if d.Reason != ReasonMastery {
		t.Errorf("Reason = %s, want mastery_pattern", d.Reason)
	}
	if d.ToDifficulty != 4 {
		t.Errorf("ToDifficulty = %d, want 4", d.ToDifficulty)
	}
}

func TestEngine_NoUpwardAdaptationOnCompletedUnit(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	done := fastCorrect()
	done.Fraction = 1.0
	for i := 0; i < 3; i++ {
		d, err := e.Observe(ctx, nil, "sess-1", "L1", 3, done)
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if d != nil {
			t.Fatalf("adaptation fired on completed unit: %+v", d)
		}
	}
}

func TestEngine_MixedWindowIsNoAdaptation(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	for _, sig := range []Signal{wrong(), fastCorrect(), wrong()} {
		d, err := e.Observe(ctx, nil, "sess-1", "L1", 3, sig)
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if d != nil {
			t.Fatalf("adaptation fired on mixed window: %+v", d)
		}
	}
}

func TestEngine_FloorAndCeilingClamp(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := e.Observe(ctx, nil, "sess-low", "L1", MinDifficulty, wrong())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if d != nil {
			t.Fatalf("lowered below floor: %+v", d)
		}
	}
	for i := 0; i < 3; i++ {
		d, err := e.Observe(ctx, nil, "sess-high", "L1", MaxDifficulty, fastCorrect())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if d != nil {
			t.Fatalf("raised above ceiling: %+v", d)
		}
	}
}

func TestEngine_ClampedWindowStaysObservable(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	// At the floor nothing can fire, but the struggling evidence must
	// not be thrown away.
	for i := 0; i < 3; i++ {
		d, err := e.Observe(ctx, nil, "sess-1", "L1", MinDifficulty, wrong())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
		if d != nil {
			t.Fatalf("lowered below floor: %+v", d)
		}
	}

	// The session later runs at a higher level; the retained window
	// means one more struggling response fires immediately.
	d, err := e.Observe(ctx, nil, "sess-1", "L1", MinDifficulty+1, wrong())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if d == nil {
		t.Fatal("no adjustment despite a full retained struggling window")
	}
	if d.FromDifficulty != MinDifficulty+1 || d.ToDifficulty != MinDifficulty {
		t.Errorf("adjustment %d→%d, want %d→%d",
			d.FromDifficulty, d.ToDifficulty, MinDifficulty+1, MinDifficulty)
	}
}

func TestEngine_WindowResetsAfterAdjustment(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := e.Observe(ctx, nil, "sess-1", "L1", 3, wrong()); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	// A single further struggling response must not refire; the window
	// was consumed by the adjustment.
	d, err := e.Observe(ctx, nil, "sess-1", "L1", 2, wrong())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if d != nil {
		t.Fatalf("adjustment refired without a full fresh window: %+v", d)
	}
}

func TestEngine_RecommendationTimeoutDegrades(t *testing.T) {
	m := store.NewMemStore()
	e := newTestEngine(&stubRecommender{block: true}, m, WithRecommendTimeout(20*time.Millisecond))
	ctx := context.Background()

	var d *Decision
	for i := 0; i < 3; i++ {
		var err error
		d, err = e.Observe(ctx, nil, "sess-1", "L1", 3, wrong())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if d == nil {
		t.Fatal("no decision")
	}
	if d.ToDifficulty != 2 {
		t.Errorf("ToDifficulty = %d, want 2 despite recommender timeout", d.ToDifficulty)
	}
	if d.RecommendedUnitID != "" {
		t.Errorf("RecommendedUnitID = %q, want empty on timeout", d.RecommendedUnitID)
	}
}

func TestEngine_RecommenderErrorDegrades(t *testing.T) {
	e := newTestEngine(&stubRecommender{err: errors.New("upstream down")}, store.NewMemStore())
	ctx := context.Background()

	var d *Decision
	for i := 0; i < 3; i++ {
		var err error
		d, err = e.Observe(ctx, nil, "sess-1", "L1", 3, fastCorrect())
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if d == nil {
		t.Fatal("no decision")
	}
	if d.RecommendedUnitID != "" {
		t.Errorf("RecommendedUnitID = %q, want empty on recommender error", d.RecommendedUnitID)
	}
}

func TestEngine_LowConfidenceCountsAsStruggling(t *testing.T) {
	e := newTestEngine(nil, store.NewMemStore())
	ctx := context.Background()

	c := 0.2
	unsure := fastCorrect()
	unsure.Confidence = &c

	var d *Decision
	for i := 0; i < 3; i++ {
		var err error
		d, err = e.Observe(ctx, nil, "sess-1", "L1", 3, unsure)
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if d == nil {
		t.Fatal("no decision for low-confidence window")
	}
	if d.Reason != ReasonStruggling {
		t.Errorf("Reason = %s, want struggling_pattern", d.Reason)
	}
}
