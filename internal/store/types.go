package store

import (
	"encoding/json"
	"time"
)

// ProgressStatus is the lifecycle status of a (learner, unit) record.
// Transitions only move forward: not_started → in_progress → completed.
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// Rank orders statuses for monotonic promotion.
func (s ProgressStatus) Rank() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// ProgressRecord is the authoritative completion state for one
// (learner, unit) pair. Fraction is non-decreasing for the record's
// lifetime; Version supports optimistic concurrency on writes.
type ProgressRecord struct {
	LearnerID     string
	UnitID        string
	Status        ProgressStatus
	Fraction      float64
	TimeSpentSecs int64
	Attempts      int
	BestScore     *float64
	Version       int64
	UpdatedAt     time.Time
}

// Clone returns a deep copy of the record.
func (r *ProgressRecord) Clone() *ProgressRecord {
	cp := *r
	if r.BestScore != nil {
		v := *r.BestScore
		cp.BestScore = &v
	}
	return &cp
}

// MasteryDecisionData is one entry in the append-only decision log for
// an objective. Decisions are immutable; a newer decision supersedes
// older ones for reads.
type MasteryDecisionData struct {
	Sequence      int64
	LearnerID     string
	ObjectiveID   string
	Decision      string // "achieved" or "in_progress"
	MasteryLevel  float64
	Confidence    float64
	Gaps          []string
	EvidenceCount int
	Timestamp     time.Time
}

// EvidenceData is one piece of assessment evidence for an objective.
type EvidenceData struct {
	LearnerID     string
	ObjectiveID   string
	SubSkillID    string // optional; empty evidence counts toward the objective only
	Score         float64
	Timestamp     time.Time
	SourceEventID string
}

// CommitRecordData maps a committed interaction event ID to its result,
// making duplicate submissions no-ops.
type CommitRecordData struct {
	EventID     string
	LearnerID   string
	Result      json.RawMessage
	CommittedAt time.Time
}

// SessionEventData records session lifecycle transitions (start/end).
type SessionEventData struct {
	Sequence        int64
	SessionID       string
	LearnerID       string
	Action          string // "start" or "end"
	ElapsedSecs     int64  // on end only
	ActiveSecs      int64  // on end only
	EventCount      int    // on end only
	FinalDifficulty int    // on end only
	Timestamp       time.Time
}

// AdaptationEventData records a difficulty adjustment for audit.
type AdaptationEventData struct {
	Sequence          int64
	SessionID         string
	LearnerID         string
	UnitID            string
	Reason            string
	FromDifficulty    int
	ToDifficulty      int
	RecommendedUnitID string // empty when the collaborator had no match
	Timestamp         time.Time
}

// LLMRequestEventData records a single call to the recommendation model.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}
