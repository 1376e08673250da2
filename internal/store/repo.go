package store

import (
	"context"
	"time"
)

// ProgressRepo owns ProgressRecord persistence. Writes go through the
// event coordinator, which serializes per learner; the version check
// still guards against external writers.
type ProgressRepo interface {
	// GetRecord returns the record for (learner, unit), or nil if none exists.
	GetRecord(ctx context.Context, learnerID, unitID string) (*ProgressRecord, error)

	// PutRecord writes a record. expectedVersion must match the stored
	// version (0 for a new record) or a ConflictError is returned. The
	// stored version is incremented on success and reflected in rec.
	PutRecord(ctx context.Context, rec *ProgressRecord, expectedVersion int64) error

	// LearnerRecords returns all records for a learner.
	LearnerRecords(ctx context.Context, learnerID string) ([]*ProgressRecord, error)
}

// DecisionRepo owns the append-only mastery decision log.
type DecisionRepo interface {
	// AppendDecision appends a decision; the assigned sequence is
	// reflected in d.
	AppendDecision(ctx context.Context, d *MasteryDecisionData) error

	// LatestDecision returns the most recent decision for an objective,
	// or nil if none exists.
	LatestDecision(ctx context.Context, learnerID, objectiveID string) (*MasteryDecisionData, error)

	// DecisionHistory returns all decisions for an objective, oldest first.
	DecisionHistory(ctx context.Context, learnerID, objectiveID string) ([]*MasteryDecisionData, error)
}

// EvidenceRepo owns assessment evidence.
type EvidenceRepo interface {
	// AppendEvidence stores one piece of evidence.
	AppendEvidence(ctx context.Context, ev *EvidenceData) error

	// ObjectiveEvidence returns all evidence for an objective, oldest first.
	ObjectiveEvidence(ctx context.Context, learnerID, objectiveID string) ([]*EvidenceData, error)
}

// CommitRepo maps committed event IDs to their results for idempotent
// resubmission.
type CommitRepo interface {
	// GetCommit returns the commit record for an event ID, or nil.
	GetCommit(ctx context.Context, eventID string) (*CommitRecordData, error)

	// PutCommit stores a commit record.
	PutCommit(ctx context.Context, rec *CommitRecordData) error

	// PruneCommits deletes commit records older than the cutoff and
	// returns how many were removed.
	PruneCommits(ctx context.Context, olderThan time.Time) (int, error)
}

// AuditRepo appends and queries the audit event tables.
type AuditRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAdaptationEvent(ctx context.Context, data AdaptationEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionEvents returns a learner's session events, oldest first.
	SessionEvents(ctx context.Context, learnerID string) ([]*SessionEventData, error)

	// AdaptationEvents returns a learner's adaptation events, oldest first.
	AdaptationEvents(ctx context.Context, learnerID string) ([]*AdaptationEventData, error)
}

// Store is the persistence boundary for the engine. WithinTx runs fn
// against a transactional view; all writes inside commit atomically or
// not at all.
type Store interface {
	ProgressRepo
	DecisionRepo
	EvidenceRepo
	CommitRepo
	AuditRepo

	WithinTx(ctx context.Context, fn func(tx Store) error) error

	// ResetLearner removes all engine state for a learner.
	ResetLearner(ctx context.Context, learnerID string) error

	Close() error
}
