package hierarchy

import (
	"fmt"
	"slices"
	"sort"
)

// Snapshot is an immutable index over a unit set. All lookups are safe
// for concurrent use without locking; a refreshed hierarchy is a new
// Snapshot swapped in via Holder.
type Snapshot struct {
	units      []Unit
	byID       map[string]*Unit
	parent     map[string]string
	byObjectiv map[string]string // objective ID → unit ID
	courses    []Unit
	topoOrder  []string
	topoIndex  map[string]int
}

// Build constructs a Snapshot from a unit set, indexing parent edges and
// the prerequisite topological order. It returns an error for structural
// defects: duplicate IDs, dangling child or prerequisite references,
// multiple parents, kind mismatches, or prerequisite cycles.
func Build(units []Unit) (*Snapshot, error) {
	s := &Snapshot{
		units:      slices.Clone(units),
		byID:       make(map[string]*Unit, len(units)),
		parent:     make(map[string]string),
		byObjectiv: make(map[string]string),
		topoIndex:  make(map[string]int, len(units)),
	}

	for i := range s.units {
		u := &s.units[i]
		if u.ID == "" {
			return nil, fmt.Errorf("unit at index %d has empty ID", i)
		}
		if _, dup := s.byID[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit ID %q", u.ID)
		}
		switch u.Kind {
		case KindCourse, KindLesson, KindSection:
		default:
			return nil, fmt.Errorf("unit %q: unknown kind %q", u.ID, u.Kind)
		}
		s.byID[u.ID] = u
	}

	for i := range s.units {
		u := &s.units[i]
		for _, childID := range u.Children {
			child, ok := s.byID[childID]
			if !ok {
				return nil, fmt.Errorf("unit %q references unknown child %q", u.ID, childID)
			}
			if err := checkChildKind(u.Kind, child.Kind); err != nil {
				return nil, fmt.Errorf("unit %q: %w", u.ID, err)
			}
			if prev, claimed := s.parent[childID]; claimed {
				return nil, fmt.Errorf("unit %q has two parents: %q and %q", childID, prev, u.ID)
			}
			s.parent[childID] = u.ID
		}
		for _, preID := range u.Prerequisites {
			if _, ok := s.byID[preID]; !ok {
				return nil, fmt.Errorf("unit %q references unknown prerequisite %q", u.ID, preID)
			}
		}
		if u.Objective != "" {
			if prev, claimed := s.byObjectiv[u.Objective]; claimed {
				return nil, fmt.Errorf("objective %q bound to both %q and %q", u.Objective, prev, u.ID)
			}
			s.byObjectiv[u.Objective] = u.ID
		}
		if u.Kind == KindCourse {
			s.courses = append(s.courses, *u)
		}
	}

	if err := s.buildTopoOrder(); err != nil {
		return nil, err
	}

	return s, nil
}

// buildTopoOrder runs Kahn's algorithm over the prerequisite edges.
// A leftover unit means a cycle.
func (s *Snapshot) buildTopoOrder() error {
	inDegree := make(map[string]int, len(s.units))
	dependents := make(map[string][]string)
	for i := range s.units {
		u := &s.units[i]
		inDegree[u.ID] = len(u.Prerequisites)
		for _, preID := range u.Prerequisites {
			dependents[preID] = append(dependents[preID], u.ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		s.topoIndex[id] = len(s.topoOrder)
		s.topoOrder = append(s.topoOrder, id)

		deps := slices.Clone(dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if len(s.topoOrder) != len(s.units) {
		var stuck []string
		for id, deg := range inDegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return fmt.Errorf("prerequisite cycle involving %v", stuck)
	}
	return nil
}

func checkChildKind(parent, child Kind) error {
	switch parent {
	case KindCourse:
		if child != KindLesson {
			return fmt.Errorf("course child must be a lesson, got %s", child)
		}
	case KindLesson:
		if child != KindSection {
			return fmt.Errorf("lesson child must be a section, got %s", child)
		}
	case KindSection:
		return fmt.Errorf("sections cannot have children")
	}
	return nil
}

// Unit returns the unit with the given ID.
func (s *Snapshot) Unit(id string) (Unit, error) {
	u, ok := s.byID[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit not found: %q", id)
	}
	return *u, nil
}

// Has reports whether a unit exists in the snapshot.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Parent returns the parent of a unit, or ok=false for roots.
func (s *Snapshot) Parent(id string) (Unit, bool) {
	pid, ok := s.parent[id]
	if !ok {
		return Unit{}, false
	}
	return *s.byID[pid], true
}

// Children returns a unit's children in declared order.
func (s *Snapshot) Children(id string) []Unit {
	u, ok := s.byID[id]
	if !ok {
		return nil
	}
	out := make([]Unit, 0, len(u.Children))
	for _, cid := range u.Children {
		out = append(out, *s.byID[cid])
	}
	return out
}

// Prerequisites returns a unit's direct prerequisite units.
func (s *Snapshot) Prerequisites(id string) []Unit {
	u, ok := s.byID[id]
	if !ok {
		return nil
	}
	out := make([]Unit, 0, len(u.Prerequisites))
	for _, pid := range u.Prerequisites {
		out = append(out, *s.byID[pid])
	}
	return out
}

// Courses returns all course units.
func (s *Snapshot) Courses() []Unit {
	return slices.Clone(s.courses)
}

// Units returns all units in the snapshot.
func (s *Snapshot) Units() []Unit {
	return slices.Clone(s.units)
}

// ObjectiveUnit returns the unit an objective is bound to.
func (s *Snapshot) ObjectiveUnit(objectiveID string) (Unit, error) {
	uid, ok := s.byObjectiv[objectiveID]
	if !ok {
		return Unit{}, fmt.Errorf("objective not bound to any unit: %q", objectiveID)
	}
	return *s.byID[uid], nil
}

// TopologicalOrder returns unit IDs in a valid prerequisite order.
func (s *Snapshot) TopologicalOrder() []string {
	return slices.Clone(s.topoOrder)
}

// SectionsAtDifficulty returns section units with the given effective
// difficulty, excluding the given IDs, in topological order. Used by the
// static recommender.
func (s *Snapshot) SectionsAtDifficulty(level int, exclude map[string]bool) []Unit {
	var out []Unit
	for _, id := range s.topoOrder {
		u := s.byID[id]
		if u.Kind != KindSection || exclude[u.ID] {
			continue
		}
		if u.EffectiveDifficulty() == level {
			out = append(out, *u)
		}
	}
	return out
}
