package progress

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

func testSnapshot(t *testing.T) *hierarchy.Snapshot {
	t.Helper()
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Children: []string{"l1", "l2"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1", "s2"}},
		{ID: "l2", Kind: hierarchy.KindLesson, Children: []string{"s3"}, Prerequisites: []string{"l1"}},
		{ID: "s1", Kind: hierarchy.KindSection},
		{ID: "s2", Kind: hierarchy.KindSection},
		{ID: "s3", Kind: hierarchy.KindSection},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return snap
}

func frac(v float64) *float64 { return &v }

func apply(t *testing.T, agg *Aggregator, repo store.Store, snap *hierarchy.Snapshot, learnerID, sectionID string, d Delta) []*store.ProgressRecord {
	t.Helper()
	updated, err := agg.ApplySectionProgress(context.Background(), repo, snap, learnerID, sectionID, d)
	if err != nil {
		t.Fatalf("ApplySectionProgress(%s): %v", sectionID, err)
	}
	return updated
}

func getRecord(t *testing.T, repo store.Store, learnerID, unitID string) *store.ProgressRecord {
	t.Helper()
	rec, err := repo.GetRecord(context.Background(), learnerID, unitID)
	if err != nil {
		t.Fatalf("GetRecord(%s): %v", unitID, err)
	}
	return rec
}

// Mirrors the two-section lesson walkthrough: S1 done → lesson 0.5,
// S2 done → lesson 1.0 completed, stale S1 resubmission is a no-op.
func TestAggregator_LessonRollup(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(1.0)})

	lesson := getRecord(t, repo, "L1", "l1")
	if lesson == nil {
		t.Fatal("lesson record not created")
	}
	if math.Abs(lesson.Fraction-0.5) > CompletionTolerance {
		t.Errorf("lesson fraction = %v, want 0.5", lesson.Fraction)
	}
	if lesson.Status != store.StatusInProgress {
		t.Errorf("lesson status = %s, want in_progress", lesson.Status)
	}

	apply(t, agg, repo, snap, "L1", "s2", Delta{Fraction: frac(1.0)})

	lesson = getRecord(t, repo, "L1", "l1")
	if math.Abs(lesson.Fraction-1.0) > CompletionTolerance {
		t.Errorf("lesson fraction = %v, want 1.0", lesson.Fraction)
	}
	if lesson.Status != store.StatusCompleted {
		t.Errorf("lesson status = %s, want completed", lesson.Status)
	}

	// Stale duplicate: fraction must never regress.
	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(0.5)})

	section := getRecord(t, repo, "L1", "s1")
	if section.Fraction != 1.0 {
		t.Errorf("section fraction regressed to %v", section.Fraction)
	}
	lesson = getRecord(t, repo, "L1", "l1")
	if lesson.Fraction != 1.0 || lesson.Status != store.StatusCompleted {
		t.Errorf("lesson regressed: fraction=%v status=%s", lesson.Fraction, lesson.Status)
	}
}

func TestAggregator_CourseRollupIsMeanOfLessons(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(1.0)})
	apply(t, agg, repo, snap, "L1", "s2", Delta{Fraction: frac(1.0)})
	apply(t, agg, repo, snap, "L1", "s3", Delta{Fraction: frac(0.5)})

	// l1 = 1.0, l2 = 0.5 → course = 0.75
	course := getRecord(t, repo, "L1", "c1")
	if math.Abs(course.Fraction-0.75) > CompletionTolerance {
		t.Errorf("course fraction = %v, want 0.75", course.Fraction)
	}
	if course.Status != store.StatusInProgress {
		t.Errorf("course status = %s, want in_progress", course.Status)
	}
}

func TestAggregator_FractionMonotonic(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	fractions := []float64{0.2, 0.6, 0.4, 0.6, 1.0, 0.1}
	last := 0.0
	for _, f := range fractions {
		apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(f)})
		rec := getRecord(t, repo, "L1", "s1")
		if rec.Fraction < last {
			t.Fatalf("fraction decreased from %v to %v", last, rec.Fraction)
		}
		last = rec.Fraction
	}
	if last != 1.0 {
		t.Errorf("final fraction = %v, want 1.0", last)
	}
}

func TestAggregator_PrerequisiteEnforcement(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	// s3's parent lesson l2 requires l1, which is incomplete.
	_, err := agg.ApplySectionProgress(context.Background(), repo, snap, "L1", "s3", Delta{Fraction: frac(0.5)})
	var unmet *PrerequisiteUnmetError
	if !errors.As(err, &unmet) {
		t.Fatalf("err = %v, want PrerequisiteUnmetError", err)
	}
	if len(unmet.Missing) != 1 || unmet.Missing[0] != "l1" {
		t.Errorf("Missing = %v, want [l1]", unmet.Missing)
	}

	// Override flag bypasses the gate.
	if _, err := agg.ApplySectionProgress(context.Background(), repo, snap, "L2", "s3", Delta{Fraction: frac(0.5), Override: true}); err != nil {
		t.Errorf("override apply: %v", err)
	}

	// Completing l1 unblocks s3 without the override.
	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(1.0)})
	apply(t, agg, repo, snap, "L1", "s2", Delta{Fraction: frac(1.0)})
	if _, err := agg.ApplySectionProgress(context.Background(), repo, snap, "L1", "s3", Delta{Fraction: frac(0.5)}); err != nil {
		t.Errorf("apply after prerequisite completed: %v", err)
	}
}

func TestAggregator_Validation(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()
	ctx := context.Background()

	cases := []struct {
		name    string
		unitID  string
		delta   Delta
	}{
		{"unknown unit", "ghost", Delta{Fraction: frac(0.5)}},
		{"non-leaf unit", "l1", Delta{Fraction: frac(0.5)}},
		{"fraction above 1", "s1", Delta{Fraction: frac(1.5)}},
		{"fraction below 0", "s1", Delta{Fraction: frac(-0.1)}},
		{"negative time", "s1", Delta{TimeSpentSecs: -5}},
		{"score above 1", "s1", Delta{Score: frac(1.2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := agg.ApplySectionProgress(ctx, repo, snap, "L1", tc.unitID, tc.delta)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}

	// Nothing was applied by the rejected updates.
	if rec := getRecord(t, repo, "L1", "s1"); rec != nil {
		t.Errorf("record created by rejected update: %+v", rec)
	}
}

func TestAggregator_MarkCompleteLeaf(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	apply(t, agg, repo, snap, "L1", "s1", Delta{MarkComplete: true})
	rec := getRecord(t, repo, "L1", "s1")
	if rec.Fraction != 1.0 || rec.Status != store.StatusCompleted {
		t.Errorf("record = fraction %v status %s, want 1.0 completed", rec.Fraction, rec.Status)
	}
}

func TestAggregator_TimeAndScoreAccrual(t *testing.T) {
	snap := testSnapshot(t)
	repo := store.NewMemStore()
	agg := NewAggregator()

	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(0.5), TimeSpentSecs: 60, Score: frac(0.7)})
	apply(t, agg, repo, snap, "L1", "s1", Delta{Fraction: frac(0.5), TimeSpentSecs: 30, Score: frac(0.6)})

	rec := getRecord(t, repo, "L1", "s1")
	if rec.TimeSpentSecs != 90 {
		t.Errorf("TimeSpentSecs = %d, want 90", rec.TimeSpentSecs)
	}
	if rec.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", rec.Attempts)
	}
	if rec.BestScore == nil || *rec.BestScore != 0.7 {
		t.Errorf("BestScore = %v, want 0.7", rec.BestScore)
	}
}
