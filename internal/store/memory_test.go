package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_PutRecord_VersionConflict(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	rec := &ProgressRecord{LearnerID: "L1", UnitID: "s1", Status: StatusInProgress, Fraction: 0.5, UpdatedAt: time.Now()}
	require.NoError(t, m.PutRecord(ctx, rec, 0))
	assert.Equal(t, int64(1), rec.Version)

	// Stale expected version is rejected.
	stale := rec.Clone()
	err := m.PutRecord(ctx, stale, 0)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(0), conflict.Expected)
	assert.Equal(t, int64(1), conflict.Actual)

	// Correct version succeeds and bumps.
	rec.Fraction = 0.75
	require.NoError(t, m.PutRecord(ctx, rec, 1))
	assert.Equal(t, int64(2), rec.Version)
}

func TestMemStore_WithinTx_RollbackOnError(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := m.WithinTx(ctx, func(tx Store) error {
		rec := &ProgressRecord{LearnerID: "L1", UnitID: "s1", Status: StatusInProgress, Fraction: 1, UpdatedAt: time.Now()}
		if err := tx.PutRecord(ctx, rec, 0); err != nil {
			return err
		}
		if err := tx.AppendDecision(ctx, &MasteryDecisionData{LearnerID: "L1", ObjectiveID: "o1", Decision: "achieved"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transaction is visible.
	rec, err := m.GetRecord(ctx, "L1", "s1")
	require.NoError(t, err)
	assert.Nil(t, rec)
	d, err := m.LatestDecision(ctx, "L1", "o1")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestMemStore_WithinTx_CommitsAtomically(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	err := m.WithinTx(ctx, func(tx Store) error {
		rec := &ProgressRecord{LearnerID: "L1", UnitID: "s1", Status: StatusCompleted, Fraction: 1, UpdatedAt: time.Now()}
		if err := tx.PutRecord(ctx, rec, 0); err != nil {
			return err
		}
		return tx.PutCommit(ctx, &CommitRecordData{
			EventID:     "ev-1",
			LearnerID:   "L1",
			Result:      json.RawMessage(`{"ok":true}`),
			CommittedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	rec, err := m.GetRecord(ctx, "L1", "s1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, StatusCompleted, rec.Status)

	commit, err := m.GetCommit(ctx, "ev-1")
	require.NoError(t, err)
	require.NotNil(t, commit)
	assert.JSONEq(t, `{"ok":true}`, string(commit.Result))
}

func TestMemStore_DecisionLog_AppendOnly(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	first := &MasteryDecisionData{LearnerID: "L1", ObjectiveID: "o1", Decision: "in_progress", Timestamp: time.Now()}
	second := &MasteryDecisionData{LearnerID: "L1", ObjectiveID: "o1", Decision: "achieved", Timestamp: time.Now()}
	require.NoError(t, m.AppendDecision(ctx, first))
	require.NoError(t, m.AppendDecision(ctx, second))
	assert.Less(t, first.Sequence, second.Sequence)

	latest, err := m.LatestDecision(ctx, "L1", "o1")
	require.NoError(t, err)
	assert.Equal(t, "achieved", latest.Decision)

	history, err := m.DecisionHistory(ctx, "L1", "o1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "in_progress", history[0].Decision)
}

func TestMemStore_PruneCommits(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()
	now := time.Now()

	for _, c := range []CommitRecordData{
		{EventID: "old", LearnerID: "L1", Result: json.RawMessage(`{}`), CommittedAt: now.Add(-48 * time.Hour)},
		{EventID: "new", LearnerID: "L1", Result: json.RawMessage(`{}`), CommittedAt: now},
	} {
		require.NoError(t, m.PutCommit(ctx, &c))
	}

	n, err := m.PruneCommits(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	old, err := m.GetCommit(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, old)
	kept, err := m.GetCommit(ctx, "new")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestMemStore_ResetLearner(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	require.NoError(t, m.PutRecord(ctx, &ProgressRecord{LearnerID: "L1", UnitID: "s1", Status: StatusInProgress, Fraction: 0.3, UpdatedAt: time.Now()}, 0))
	require.NoError(t, m.PutRecord(ctx, &ProgressRecord{LearnerID: "L2", UnitID: "s1", Status: StatusInProgress, Fraction: 0.4, UpdatedAt: time.Now()}, 0))
	require.NoError(t, m.AppendEvidence(ctx, &EvidenceData{LearnerID: "L1", ObjectiveID: "o1", Score: 0.9, Timestamp: time.Now()}))

	require.NoError(t, m.ResetLearner(ctx, "L1"))

	gone, err := m.GetRecord(ctx, "L1", "s1")
	require.NoError(t, err)
	assert.Nil(t, gone)
	evs, err := m.ObjectiveEvidence(ctx, "L1", "o1")
	require.NoError(t, err)
	assert.Empty(t, evs)

	kept, err := m.GetRecord(ctx, "L2", "s1")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
