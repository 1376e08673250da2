package hierarchy

import (
	"context"
	"testing"
)

// testUnits returns a small course: one course, two lessons, three
// sections, with l2 requiring l1.
func testUnits() []Unit {
	return []Unit{
		{ID: "c1", Kind: KindCourse, Name: "Course", Children: []string{"l1", "l2"}},
		{ID: "l1", Kind: KindLesson, Name: "Lesson 1", Children: []string{"s1", "s2"}, Objective: "o1"},
		{ID: "l2", Kind: KindLesson, Name: "Lesson 2", Children: []string{"s3"}, Prerequisites: []string{"l1"}},
		{ID: "s1", Kind: KindSection, Name: "Section 1"},
		{ID: "s2", Kind: KindSection, Name: "Section 2"},
		{ID: "s3", Kind: KindSection, Name: "Section 3", Difficulty: 4},
	}
}

func TestBuild_ParentEdges(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p, ok := snap.Parent("s1")
	if !ok || p.ID != "l1" {
		t.Errorf("Parent(s1) = %v, %v, want l1", p.ID, ok)
	}
	p, ok = snap.Parent("l2")
	if !ok || p.ID != "c1" {
		t.Errorf("Parent(l2) = %v, %v, want c1", p.ID, ok)
	}
	if _, ok := snap.Parent("c1"); ok {
		t.Error("Parent(c1) should not exist")
	}
}

func TestBuild_ChildrenOrdered(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	children := snap.Children("l1")
	if len(children) != 2 || children[0].ID != "s1" || children[1].ID != "s2" {
		t.Errorf("Children(l1) = %v, want [s1 s2]", children)
	}
}

func TestBuild_RejectsDuplicateID(t *testing.T) {
	units := testUnits()
	units = append(units, Unit{ID: "s1", Kind: KindSection})
	if _, err := Build(units); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestBuild_RejectsUnknownChild(t *testing.T) {
	units := []Unit{
		{ID: "c1", Kind: KindCourse, Children: []string{"ghost"}},
	}
	if _, err := Build(units); err == nil {
		t.Error("expected error for unknown child")
	}
}

func TestBuild_RejectsSecondParent(t *testing.T) {
	units := []Unit{
		{ID: "c1", Kind: KindCourse, Children: []string{"l1"}},
		{ID: "c2", Kind: KindCourse, Children: []string{"l1"}},
		{ID: "l1", Kind: KindLesson},
	}
	if _, err := Build(units); err == nil {
		t.Error("expected error for unit with two parents")
	}
}

func TestBuild_RejectsKindMismatch(t *testing.T) {
	units := []Unit{
		{ID: "c1", Kind: KindCourse, Children: []string{"s1"}},
		{ID: "s1", Kind: KindSection},
	}
	if _, err := Build(units); err == nil {
		t.Error("expected error for course with section child")
	}
}

func TestBuild_RejectsPrerequisiteCycle(t *testing.T) {
	units := []Unit{
		{ID: "s1", Kind: KindSection, Prerequisites: []string{"s2"}},
		{ID: "s2", Kind: KindSection, Prerequisites: []string{"s1"}},
	}
	if _, err := Build(units); err == nil {
		t.Error("expected error for prerequisite cycle")
	}
}

func TestTopologicalOrder_RespectsPrerequisites(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order := snap.TopologicalOrder()
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos["l1"] >= pos["l2"] {
		t.Errorf("l1 at %d should precede l2 at %d", pos["l1"], pos["l2"])
	}
}

func TestObjectiveUnit(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	u, err := snap.ObjectiveUnit("o1")
	if err != nil {
		t.Fatalf("ObjectiveUnit: %v", err)
	}
	if u.ID != "l1" {
		t.Errorf("ObjectiveUnit(o1) = %s, want l1", u.ID)
	}
	if _, err := snap.ObjectiveUnit("nope"); err == nil {
		t.Error("expected error for unbound objective")
	}
}

func TestSectionsAtDifficulty(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hard := snap.SectionsAtDifficulty(4, nil)
	if len(hard) != 1 || hard[0].ID != "s3" {
		t.Errorf("SectionsAtDifficulty(4) = %v, want [s3]", hard)
	}

	normal := snap.SectionsAtDifficulty(DefaultDifficulty, map[string]bool{"s1": true})
	if len(normal) != 1 || normal[0].ID != "s2" {
		t.Errorf("SectionsAtDifficulty(3, exclude s1) = %v, want [s2]", normal)
	}
}

type staticProvider struct {
	units []Unit
	err   error
}

func (p *staticProvider) Units(context.Context) ([]Unit, error) {
	return p.units, p.err
}

func TestHolder_RefreshSwapsSnapshot(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h := NewHolder(snap)
	old := h.Current()

	extended := append(testUnits(), Unit{ID: "s4", Kind: KindSection})
	if err := h.Refresh(context.Background(), &staticProvider{units: extended}); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if !h.Current().Has("s4") {
		t.Error("refreshed snapshot should contain s4")
	}
	if old.Has("s4") {
		t.Error("old snapshot must be unchanged after refresh")
	}
}

func TestHolder_RefreshKeepsOldOnBuildError(t *testing.T) {
	snap, err := Build(testUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h := NewHolder(snap)

	bad := []Unit{{ID: "x", Kind: KindSection, Prerequisites: []string{"x"}}}
	if err := h.Refresh(context.Background(), &staticProvider{units: bad}); err == nil {
		t.Fatal("expected refresh error")
	}
	if h.Current() != snap {
		t.Error("failed refresh must keep the previous snapshot")
	}
}

func TestEffectiveThresholds(t *testing.T) {
	u := Unit{}
	if got := u.EffectiveMasteryThreshold(); got != DefaultMasteryThreshold {
		t.Errorf("EffectiveMasteryThreshold = %v, want %v", got, DefaultMasteryThreshold)
	}
	if got := u.EffectiveConfidenceThreshold(); got != DefaultConfidenceThreshold {
		t.Errorf("EffectiveConfidenceThreshold = %v, want %v", got, DefaultConfidenceThreshold)
	}
	u = Unit{MasteryThreshold: 0.9, ConfidenceThreshold: 0.7, Difficulty: 5}
	if u.EffectiveMasteryThreshold() != 0.9 || u.EffectiveConfidenceThreshold() != 0.7 || u.EffectiveDifficulty() != 5 {
		t.Error("explicit thresholds should win over defaults")
	}
}
