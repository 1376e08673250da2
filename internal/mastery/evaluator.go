// Package mastery turns assessment evidence into mastery decisions.
// Decisions are append-only: a new evaluation supersedes older entries
// for reads but never mutates or deletes them.
package mastery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

const (
	// DefaultDecay is the per-day exponential discount on evidence age.
	DefaultDecay = 0.95

	// DecisionAchieved and DecisionInProgress are the two decision values.
	DecisionAchieved   = "achieved"
	DecisionInProgress = "in_progress"

	// thresholdEpsilon absorbs float error at the decision boundary so
	// a weighted score exactly at the threshold grants mastery.
	thresholdEpsilon = 1e-9
)

// Evidence is one new assessment result submitted for evaluation.
type Evidence struct {
	SubSkillID    string // optional
	Score         float64
	Timestamp     time.Time
	SourceEventID string
}

// Evaluator computes recency-weighted mastery decisions. Thresholds come
// from the objective's unit in the hierarchy snapshot; decay is fixed at
// construction.
type Evaluator struct {
	decay float64
	clock func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDecay overrides the per-day decay factor. Values outside (0,1]
// are ignored.
func WithDecay(decay float64) Option {
	return func(e *Evaluator) {
		if decay > 0 && decay <= 1 {
			e.decay = decay
		}
	}
}

// WithClock overrides the evaluation clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Evaluator) { e.clock = clock }
}

// NewEvaluator creates an Evaluator with the default 0.95 decay.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{decay: DefaultDecay, clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate stores newEvidence, recomputes the recency-weighted score
// over all evidence for the objective, and appends a new decision.
// An earlier achieved decision is never retracted: once a learner has
// mastered an objective, later weak evidence keeps the decision at
// achieved (the recorded level and confidence still reflect the data).
func (e *Evaluator) Evaluate(ctx context.Context, repo store.Store, snap *hierarchy.Snapshot, learnerID, objectiveID string, newEvidence []Evidence) (*store.MasteryDecisionData, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("mastery: empty learner id")
	}
	unit, err := snap.ObjectiveUnit(objectiveID)
	if err != nil {
		return nil, fmt.Errorf("mastery: %w", err)
	}
	for i, ev := range newEvidence {
		if ev.Score < 0 || ev.Score > 1 {
			return nil, fmt.Errorf("mastery: evidence[%d] score %v outside [0,1]", i, ev.Score)
		}
	}

	now := e.clock()
	for _, ev := range newEvidence {
		ts := ev.Timestamp
		if ts.IsZero() {
			ts = now
		}
		if err := repo.AppendEvidence(ctx, &store.EvidenceData{
			LearnerID:     learnerID,
			ObjectiveID:   objectiveID,
			SubSkillID:    ev.SubSkillID,
			Score:         ev.Score,
			Timestamp:     ts,
			SourceEventID: ev.SourceEventID,
		}); err != nil {
			return nil, err
		}
	}

	all, err := repo.ObjectiveEvidence(ctx, learnerID, objectiveID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("mastery: no evidence for objective %s", objectiveID)
	}

	level, confidence := e.weightedStats(all, now)
	threshold := unit.EffectiveMasteryThreshold()

	decision := DecisionInProgress
	if level >= threshold-thresholdEpsilon && confidence >= unit.EffectiveConfidenceThreshold()-thresholdEpsilon {
		decision = DecisionAchieved
	}

	prior, err := repo.LatestDecision(ctx, learnerID, objectiveID)
	if err != nil {
		return nil, err
	}
	if prior != nil && prior.Decision == DecisionAchieved {
		decision = DecisionAchieved
	}

	var gaps []string
	if decision != DecisionAchieved {
		gaps = e.subSkillGaps(all, now, threshold)
	}

	d := &store.MasteryDecisionData{
		LearnerID:     learnerID,
		ObjectiveID:   objectiveID,
		Decision:      decision,
		MasteryLevel:  level,
		Confidence:    confidence,
		Gaps:          gaps,
		EvidenceCount: len(all),
		Timestamp:     now,
	}
	if err := repo.AppendDecision(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// weightedStats computes the recency-weighted mean score and a
// confidence in it. Confidence grows with evidence count, saturating as
// 1 - 1/(1+n), and shrinks with weighted score variance.
func (e *Evaluator) weightedStats(evidence []*store.EvidenceData, now time.Time) (level, confidence float64) {
	var sumW, sumWS float64
	weights := make([]float64, len(evidence))
	for i, ev := range evidence {
		w := math.Pow(e.decay, ageDays(ev.Timestamp, now))
		weights[i] = w
		sumW += w
		sumWS += w * ev.Score
	}
	if sumW == 0 {
		return 0, 0
	}
	level = sumWS / sumW

	var sumWVar float64
	for i, ev := range evidence {
		d := ev.Score - level
		sumWVar += weights[i] * d * d
	}
	variance := sumWVar / sumW

	saturation := 1 - 1/(1+float64(len(evidence)))
	confidence = saturation / (1 + 4*variance)
	return level, confidence
}

// subSkillGaps returns the sub-skills whose own weighted scores fall
// below the threshold, sorted for stable output. Evidence without a
// sub-skill tag counts only toward the objective.
func (e *Evaluator) subSkillGaps(evidence []*store.EvidenceData, now time.Time, threshold float64) []string {
	type acc struct{ sumW, sumWS float64 }
	bySkill := make(map[string]*acc)
	for _, ev := range evidence {
		if ev.SubSkillID == "" {
			continue
		}
		a := bySkill[ev.SubSkillID]
		if a == nil {
			a = &acc{}
			bySkill[ev.SubSkillID] = a
		}
		w := math.Pow(e.decay, ageDays(ev.Timestamp, now))
		a.sumW += w
		a.sumWS += w * ev.Score
	}

	var gaps []string
	for id, a := range bySkill {
		if a.sumW == 0 {
			continue
		}
		if a.sumWS/a.sumW < threshold-thresholdEpsilon {
			gaps = append(gaps, id)
		}
	}
	sort.Strings(gaps)
	return gaps
}

func ageDays(ts, now time.Time) float64 {
	age := now.Sub(ts)
	if age < 0 {
		return 0
	}
	return age.Hours() / 24
}
