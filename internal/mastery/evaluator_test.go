package mastery

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

func testSnapshot(t *testing.T) *hierarchy.Snapshot {
	t.Helper()
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Children: []string{"l1"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1"}},
		{ID: "s1", Kind: hierarchy.KindSection, Objective: "o1"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return snap
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Exercises the documented numeric walkthrough: decay 0.95, evidence
// [{0.9, age 0}, {0.85, age 1}, {0.6, age 10}]. The weighted score
// clears the 0.80 threshold but three data points give too little
// confidence, so the decision stays in_progress.
func TestEvaluator_RecencyWeightedScore(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEvaluator(WithClock(fixedClock(now)))

	d, err := ev.Evaluate(context.Background(), repo, snap, "L1", "o1", []Evidence{
		{Score: 0.9, Timestamp: now},
		{Score: 0.85, Timestamp: now.Add(-24 * time.Hour)},
		{Score: 0.6, Timestamp: now.Add(-10 * 24 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// weights: 1, 0.95, 0.95^10 ≈ 0.598737
	// level = (0.9 + 0.85*0.95 + 0.6*0.598737) / 2.548737 ≈ 0.810889
	if math.Abs(d.MasteryLevel-0.810889) > 1e-6 {
		t.Errorf("MasteryLevel = %v, want ≈0.810889", d.MasteryLevel)
	}
	// confidence = (1 - 1/4) / (1 + 4*variance) ≈ 0.709870
	if math.Abs(d.Confidence-0.709870) > 1e-4 {
		t.Errorf("Confidence = %v, want ≈0.709870", d.Confidence)
	}
	if d.Decision != DecisionInProgress {
		t.Errorf("Decision = %s, want in_progress", d.Decision)
	}
	if d.EvidenceCount != 3 {
		t.Errorf("EvidenceCount = %d, want 3", d.EvidenceCount)
	}
}

func TestEvaluator_ThresholdBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Six identical scores: zero variance, confidence = 1 - 1/7 ≈ 0.857.
	sixOf := func(score float64) []Evidence {
		out := make([]Evidence, 6)
		for i := range out {
			out[i] = Evidence{Score: score, Timestamp: now}
		}
		return out
	}

	t.Run("exactly at threshold achieves", func(t *testing.T) {
		snap := testSnapshot(t)
		repo := store.NewMemStore()
		ev := NewEvaluator(WithClock(fixedClock(now)))

		d, err := ev.Evaluate(context.Background(), repo, snap, "L1", "o1", sixOf(0.80))
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if d.Decision != DecisionAchieved {
			t.Errorf("Decision = %s, want achieved at exact threshold", d.Decision)
		}
	})

	t.Run("just below threshold stays in progress", func(t *testing.T) {
		snap := testSnapshot(t)
		repo := store.NewMemStore()
		ev := NewEvaluator(WithClock(fixedClock(now)))

		d, err := ev.Evaluate(context.Background(), repo, snap, "L1", "o1", sixOf(0.7999999))
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if d.Decision != DecisionInProgress {
			t.Errorf("Decision = %s, want in_progress below threshold", d.Decision)
		}
	})
}

func TestEvaluator_AchievedIsNeverRetracted(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEvaluator(WithClock(fixedClock(now)))
	ctx := context.Background()

	strong := make([]Evidence, 6)
	for i := range strong {
		strong[i] = Evidence{Score: 0.95, Timestamp: now}
	}
	d, err := ev.Evaluate(ctx, repo, snap, "L1", "o1", strong)
	if err != nil {
		t.Fatalf("Evaluate strong: %v", err)
	}
	if d.Decision != DecisionAchieved {
		t.Fatalf("Decision = %s, want achieved", d.Decision)
	}

	d, err = ev.Evaluate(ctx, repo, snap, "L1", "o1", []Evidence{
		{Score: 0.1, Timestamp: now},
		{Score: 0.2, Timestamp: now},
	})
	if err != nil {
		t.Fatalf("Evaluate weak: %v", err)
	}
	if d.Decision != DecisionAchieved {
		t.Errorf("Decision = %s after weak evidence, want achieved kept", d.Decision)
	}

	// The log keeps every decision; the latest wins for reads.
	history, err := repo.DecisionHistory(ctx, "L1", "o1")
	if err != nil {
		t.Fatalf("DecisionHistory: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("len(history) = %d, want 2", len(history))
	}
}

func TestEvaluator_SubSkillGaps(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEvaluator(WithClock(fixedClock(now)))

	d, err := ev.Evaluate(context.Background(), repo, snap, "L1", "o1", []Evidence{
		{SubSkillID: "fractions", Score: 0.9, Timestamp: now},
		{SubSkillID: "decimals", Score: 0.5, Timestamp: now},
		{Score: 0.7, Timestamp: now},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if d.Decision != DecisionInProgress {
		t.Fatalf("Decision = %s, want in_progress", d.Decision)
	}
	if len(d.Gaps) != 1 || d.Gaps[0] != "decimals" {
		t.Errorf("Gaps = %v, want [decimals]", d.Gaps)
	}
}

func TestEvaluator_RejectsBadInput(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	ev := NewEvaluator()
	ctx := context.Background()

	if _, err := ev.Evaluate(ctx, repo, snap, "L1", "ghost", []Evidence{{Score: 0.5}}); err == nil {
		t.Error("expected error for unbound objective")
	}
	if _, err := ev.Evaluate(ctx, repo, snap, "L1", "o1", []Evidence{{Score: 1.5}}); err == nil {
		t.Error("expected error for out-of-range score")
	}
	if _, err := ev.Evaluate(ctx, repo, snap, "", "o1", []Evidence{{Score: 0.5}}); err == nil {
		t.Error("expected error for empty learner id")
	}
}
