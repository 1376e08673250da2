package recommend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/llm"
	"github.com/abhisek/adaptic/internal/store"
)

func testSnapshot(t *testing.T) *hierarchy.Snapshot {
	t.Helper()
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Children: []string{"l1"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1", "s2", "s3"}},
		{ID: "s1", Kind: hierarchy.KindSection, Difficulty: 2},
		{ID: "s2", Kind: hierarchy.KindSection, Difficulty: 2},
		{ID: "s3", Kind: hierarchy.KindSection, Difficulty: 4},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return snap
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatic_SkipsCompletedAndCurrent(t *testing.T) {
	snap := testSnapshot(t)
	m := store.NewMemStore()
	ctx := context.Background()

	// s1 is already completed.
	rec := &store.ProgressRecord{LearnerID: "L1", UnitID: "s1", Status: store.StatusCompleted, Fraction: 1}
	if err := m.PutRecord(ctx, rec, 0); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}

	s := NewStatic(m)
	got, err := s.Recommend(ctx, snap, "L1", 2, "s2")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// s1 completed, s2 is the current unit: nothing at level 2 remains.
	if got != "" {
		t.Errorf("Recommend = %q, want empty", got)
	}

	got, err = s.Recommend(ctx, snap, "L1", 4, "s2")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "s3" {
		t.Errorf("Recommend = %q, want s3", got)
	}
}

func TestStatic_NoMatchIsNotAnError(t *testing.T) {
	snap := testSnapshot(t)
	s := NewStatic(store.NewMemStore())

	got, err := s.Recommend(context.Background(), snap, "L1", 5, "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "" {
		t.Errorf("Recommend = %q, want empty for no match", got)
	}
}

func TestModel_ChoosesFromCandidates(t *testing.T) {
	snap := testSnapshot(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"unitId":"s2","rationale":"continues the same lesson"}`),
	})
	r := NewModel(mock, NewStatic(store.NewMemStore()), discardLog())

	got, err := r.Recommend(context.Background(), snap, "L1", 2, "s3")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "s2" {
		t.Errorf("Recommend = %q, want s2", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestModel_SingleCandidateSkipsModelCall(t *testing.T) {
	snap := testSnapshot(t)
	mock := llm.NewMockProvider()
	r := NewModel(mock, NewStatic(store.NewMemStore()), discardLog())

	got, err := r.Recommend(context.Background(), snap, "L1", 4, "s1")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "s3" {
		t.Errorf("Recommend = %q, want s3", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("CallCount = %d, want 0 for single candidate", mock.CallCount())
	}
}

func TestModel_FallsBackOnProviderFailure(t *testing.T) {
	snap := testSnapshot(t)
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	r := NewModel(mock, NewStatic(store.NewMemStore()), discardLog())

	got, err := r.Recommend(context.Background(), snap, "L1", 2, "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "s1" {
		t.Errorf("Recommend = %q, want fallback s1", got)
	}
}

func TestModel_RejectsHallucinatedUnit(t *testing.T) {
	snap := testSnapshot(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"unitId":"s-made-up","rationale":"sounds plausible"}`),
	})
	r := NewModel(mock, NewStatic(store.NewMemStore()), discardLog())

	got, err := r.Recommend(context.Background(), snap, "L1", 2, "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got != "s1" {
		t.Errorf("Recommend = %q, want fallback s1", got)
	}
}
