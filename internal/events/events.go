// Package events defines the engine's emitted events and a small
// in-memory bus for downstream consumers (notifications, achievements).
// Events are plain versioned records; the bus delivers them to
// subscribers without blocking the commit path.
package events

import "time"

// Type identifies an emitted event.
type Type string

const (
	TypeProgressChanged   Type = "progress.changed"
	TypeMasteryAchieved   Type = "mastery.achieved"
	TypeDifficultyAdapted Type = "difficulty.adapted"
)

// Event is the interface all emitted records satisfy.
type Event interface {
	EventType() Type
	Learner() string
	OccurredAt() time.Time
}

// Base carries the fields shared by every emitted event.
type Base struct {
	Type      Type      `json:"type"`
	Version   int       `json:"version"`
	LearnerID string    `json:"learnerId"`
	Timestamp time.Time `json:"timestamp"`
}

func (b Base) EventType() Type       { return b.Type }
func (b Base) Learner() string       { return b.LearnerID }
func (b Base) OccurredAt() time.Time { return b.Timestamp }

func newBase(t Type, learnerID string, at time.Time) Base {
	return Base{Type: t, Version: 1, LearnerID: learnerID, Timestamp: at}
}

// ProgressChanged is emitted when one or more progress records move.
type ProgressChanged struct {
	Base
	UnitIDs []string `json:"unitIds"` // section first, then rolled-up ancestors
}

// NewProgressChanged creates a ProgressChanged event.
func NewProgressChanged(learnerID string, unitIDs []string, at time.Time) ProgressChanged {
	return ProgressChanged{Base: newBase(TypeProgressChanged, learnerID, at), UnitIDs: unitIDs}
}

// MasteryAchieved is emitted when an objective first reaches achieved.
type MasteryAchieved struct {
	Base
	ObjectiveID  string  `json:"objectiveId"`
	MasteryLevel float64 `json:"masteryLevel"`
	Confidence   float64 `json:"confidence"`
}

// NewMasteryAchieved creates a MasteryAchieved event.
func NewMasteryAchieved(learnerID, objectiveID string, level, confidence float64, at time.Time) MasteryAchieved {
	return MasteryAchieved{
		Base:         newBase(TypeMasteryAchieved, learnerID, at),
		ObjectiveID:  objectiveID,
		MasteryLevel: level,
		Confidence:   confidence,
	}
}

// DifficultyAdapted is emitted when a session's difficulty changes.
type DifficultyAdapted struct {
	Base
	SessionID         string `json:"sessionId"`
	Reason            string `json:"reason"`
	FromDifficulty    int    `json:"fromDifficulty"`
	ToDifficulty      int    `json:"toDifficulty"`
	RecommendedUnitID string `json:"recommendedUnitId,omitempty"`
}

// NewDifficultyAdapted creates a DifficultyAdapted event.
func NewDifficultyAdapted(learnerID, sessionID, reason string, from, to int, recommended string, at time.Time) DifficultyAdapted {
	return DifficultyAdapted{
		Base:              newBase(TypeDifficultyAdapted, learnerID, at),
		SessionID:         sessionID,
		Reason:            reason,
		FromDifficulty:    from,
		ToDifficulty:      to,
		RecommendedUnitID: recommended,
	}
}
