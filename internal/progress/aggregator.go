// Package progress owns all derived completion state. Lesson and course
// fractions are computed here and nowhere else, so the persisted
// aggregates can always be recomputed from section-level truth.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

// CompletionTolerance is the floating-point tolerance for treating a
// fraction as 1.0.
const CompletionTolerance = 1e-9

// Delta is one section-level progress report.
type Delta struct {
	// Fraction is the reported completion fraction in [0,1]. Applied as
	// max(existing, reported); a stale lower value is a no-op.
	Fraction *float64

	// TimeSpentSecs is additional time to accrue on the section record.
	TimeSpentSecs int64

	// Score rolls into the record's best evidence score.
	Score *float64

	// MarkComplete explicitly completes a unit with no reported
	// fraction, e.g. a non-decomposable leaf.
	MarkComplete bool

	// Override skips prerequisite enforcement (administrative use).
	Override bool
}

// Aggregator applies section deltas and rolls fractions up the
// hierarchy. It must be called under the coordinator's per-learner
// serialization; it does not lock.
type Aggregator struct {
	clock func() time.Time
}

// NewAggregator creates an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{clock: time.Now}
}

// ApplySectionProgress validates and applies a delta to the section's
// record, then recomputes the parent lesson and course records. All
// writes go through repo; callers pass a transactional view for
// atomicity. Returns every record that changed, section first.
func (a *Aggregator) ApplySectionProgress(ctx context.Context, repo store.ProgressRepo, snap *hierarchy.Snapshot, learnerID, sectionID string, d Delta) ([]*store.ProgressRecord, error) {
	unit, err := snap.Unit(sectionID)
	if err != nil {
		return nil, &ValidationError{Field: "unitId", Reason: fmt.Sprintf("unknown unit %q", sectionID)}
	}
	if len(unit.Children) > 0 {
		return nil, &ValidationError{Field: "unitId", Reason: fmt.Sprintf("unit %q is not a leaf; progress is reported at section level", sectionID)}
	}
	if d.Fraction != nil && (*d.Fraction < 0 || *d.Fraction > 1) {
		return nil, &ValidationError{Field: "fraction", Reason: fmt.Sprintf("%v outside [0,1]", *d.Fraction)}
	}
	if d.TimeSpentSecs < 0 {
		return nil, &ValidationError{Field: "timeSpentSecs", Reason: "negative duration"}
	}
	if d.Score != nil && (*d.Score < 0 || *d.Score > 1) {
		return nil, &ValidationError{Field: "score", Reason: fmt.Sprintf("%v outside [0,1]", *d.Score)}
	}

	if !d.Override {
		if err := a.checkPrerequisites(ctx, repo, snap, learnerID, sectionID); err != nil {
			return nil, err
		}
	}

	rec, err := a.loadOrInit(ctx, repo, learnerID, sectionID)
	if err != nil {
		return nil, err
	}
	prevVersion := rec.Version

	reported := rec.Fraction
	if d.Fraction != nil && *d.Fraction > reported {
		reported = *d.Fraction
	}
	if d.MarkComplete {
		reported = 1.0
	}
	rec.Fraction = reported
	rec.Status = promoteStatus(rec.Status, statusForFraction(reported))
	rec.Attempts++
	rec.TimeSpentSecs += d.TimeSpentSecs
	if d.Score != nil && (rec.BestScore == nil || *d.Score > *rec.BestScore) {
		v := *d.Score
		rec.BestScore = &v
	}
	rec.UpdatedAt = a.clock()

	if err := repo.PutRecord(ctx, rec, prevVersion); err != nil {
		return nil, err
	}
	updated := []*store.ProgressRecord{rec}

	// Roll up: lesson then course.
	childID := sectionID
	for {
		parent, ok := snap.Parent(childID)
		if !ok {
			break
		}
		parentRec, err := a.recomputeParent(ctx, repo, snap, learnerID, parent)
		if err != nil {
			return nil, err
		}
		if parentRec != nil {
			updated = append(updated, parentRec)
		}
		childID = parent.ID
	}

	return updated, nil
}

// checkPrerequisites walks the section and its ancestors and rejects
// the update if any declared prerequisite isn't completed.
func (a *Aggregator) checkPrerequisites(ctx context.Context, repo store.ProgressRepo, snap *hierarchy.Snapshot, learnerID, unitID string) error {
	var missing []string
	id := unitID
	for id != "" {
		for _, pre := range snap.Prerequisites(id) {
			rec, err := repo.GetRecord(ctx, learnerID, pre.ID)
			if err != nil {
				return err
			}
			if rec == nil || rec.Status != store.StatusCompleted {
				missing = append(missing, pre.ID)
			}
		}
		parent, ok := snap.Parent(id)
		if !ok {
			break
		}
		id = parent.ID
	}
	if len(missing) > 0 {
		return &PrerequisiteUnmetError{UnitID: unitID, Missing: missing}
	}
	return nil
}

// recomputeParent sets a parent's fraction to the mean of its
// children's fractions. Missing child records count as 0. Returns nil
// if nothing changed.
func (a *Aggregator) recomputeParent(ctx context.Context, repo store.ProgressRepo, snap *hierarchy.Snapshot, learnerID string, parent hierarchy.Unit) (*store.ProgressRecord, error) {
	children := snap.Children(parent.ID)
	if len(children) == 0 {
		// Fraction for a childless unit only moves via an explicit
		// completion signal, never via rollup.
		return nil, nil
	}

	sum := 0.0
	for _, child := range children {
		rec, err := repo.GetRecord(ctx, learnerID, child.ID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			sum += rec.Fraction
		}
	}
	mean := sum / float64(len(children))

	rec, err := a.loadOrInit(ctx, repo, learnerID, parent.ID)
	if err != nil {
		return nil, err
	}
	prevVersion := rec.Version

	status := promoteStatus(rec.Status, statusForFraction(mean))
	if rec.Fraction == mean && rec.Status == status && prevVersion != 0 {
		return nil, nil
	}

	rec.Fraction = mean
	rec.Status = status
	rec.UpdatedAt = a.clock()
	if err := repo.PutRecord(ctx, rec, prevVersion); err != nil {
		return nil, err
	}
	return rec, nil
}

func (a *Aggregator) loadOrInit(ctx context.Context, repo store.ProgressRepo, learnerID, unitID string) (*store.ProgressRecord, error) {
	rec, err := repo.GetRecord(ctx, learnerID, unitID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &store.ProgressRecord{
			LearnerID: learnerID,
			UnitID:    unitID,
			Status:    store.StatusNotStarted,
		}
	}
	return rec, nil
}

// statusForFraction derives the status a fraction implies on its own.
func statusForFraction(fraction float64) store.ProgressStatus {
	switch {
	case fraction >= 1.0-CompletionTolerance:
		return store.StatusCompleted
	case fraction > 0:
		return store.StatusInProgress
	default:
		return store.StatusNotStarted
	}
}

// promoteStatus keeps status transitions strictly forward.
func promoteStatus(current, candidate store.ProgressStatus) store.ProgressStatus {
	if candidate.Rank() > current.Rank() {
		return candidate
	}
	return current
}
