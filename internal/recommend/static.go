// Package recommend supplies replacement content for a difficulty
// adjustment: a model-backed recommender with a deterministic
// hierarchy-walk fallback.
package recommend

import (
	"context"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

// Static recommends the first incomplete section at the target
// difficulty, in topological order. Deterministic and dependency-free;
// used as the fallback when no model provider is configured or the
// model call fails.
type Static struct {
	progress store.ProgressRepo
}

// NewStatic creates a Static recommender.
func NewStatic(progress store.ProgressRepo) *Static {
	return &Static{progress: progress}
}

// Recommend returns the unit ID of the first section at the requested
// level the learner hasn't completed, or "" when none exists.
func (s *Static) Recommend(ctx context.Context, snap *hierarchy.Snapshot, learnerID string, difficulty int, currentUnitID string) (string, error) {
	if snap == nil {
		return "", nil
	}

	exclude := map[string]bool{currentUnitID: true}
	records, err := s.progress.LearnerRecords(ctx, learnerID)
	if err != nil {
		return "", err
	}
	for _, rec := range records {
		if rec.Status == store.StatusCompleted {
			exclude[rec.UnitID] = true
		}
	}

	candidates := snap.SectionsAtDifficulty(difficulty, exclude)
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0].ID, nil
}
