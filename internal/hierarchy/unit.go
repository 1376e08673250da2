package hierarchy

import "context"

// Kind identifies a unit's level in the content hierarchy.
type Kind string

const (
	KindCourse  Kind = "course"
	KindLesson  Kind = "lesson"
	KindSection Kind = "section"
)

// Default thresholds for objectives bound to a unit that doesn't
// override them.
const (
	DefaultMasteryThreshold    = 0.80
	DefaultConfidenceThreshold = 0.85
)

// DefaultDifficulty is the baseline difficulty for a unit that doesn't
// declare one. Difficulty is an ordinal 1..5 scale.
const DefaultDifficulty = 3

// Unit is a single node in the course→lesson→section hierarchy.
// Units are supplied by the content collaborator and held read-only.
type Unit struct {
	ID            string
	Kind          Kind
	Name          string
	Children      []string // ordered child unit IDs
	Prerequisites []string // unit IDs that must be completed first
	Objective     string   // learning objective bound to this unit, if any

	// MasteryThreshold and ConfidenceThreshold apply to the bound
	// objective. Zero means use the defaults.
	MasteryThreshold    float64
	ConfidenceThreshold float64

	// Difficulty is the unit's ordinal difficulty (1..5). Zero means
	// DefaultDifficulty.
	Difficulty int
}

// EffectiveMasteryThreshold returns the unit's mastery threshold or the default.
func (u Unit) EffectiveMasteryThreshold() float64 {
	if u.MasteryThreshold > 0 {
		return u.MasteryThreshold
	}
	return DefaultMasteryThreshold
}

// EffectiveConfidenceThreshold returns the unit's confidence threshold or the default.
func (u Unit) EffectiveConfidenceThreshold() float64 {
	if u.ConfidenceThreshold > 0 {
		return u.ConfidenceThreshold
	}
	return DefaultConfidenceThreshold
}

// EffectiveDifficulty returns the unit's difficulty or the default.
func (u Unit) EffectiveDifficulty() int {
	if u.Difficulty > 0 {
		return u.Difficulty
	}
	return DefaultDifficulty
}

// Provider is the external content collaborator the engine reads the
// hierarchy from. The engine never writes back.
type Provider interface {
	// Units returns the full unit set for a snapshot rebuild.
	Units(ctx context.Context) ([]Unit, error)
}
