package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

func TestWriteWorkbook(t *testing.T) {
	ctx := context.Background()
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "c1", Kind: hierarchy.KindCourse, Name: "Fractions", Children: []string{"l1"}},
		{ID: "l1", Kind: hierarchy.KindLesson, Children: []string{"s1"}},
		{ID: "s1", Kind: hierarchy.KindSection, Name: "Adding fractions", Objective: "o1"},
	})
	require.NoError(t, err)

	m := store.NewMemStore()
	require.NoError(t, m.PutRecord(ctx, &store.ProgressRecord{
		LearnerID: "L1", UnitID: "s1", Status: store.StatusCompleted,
		Fraction: 1.0, TimeSpentSecs: 120, Attempts: 2, UpdatedAt: time.Now(),
	}, 0))
	require.NoError(t, m.AppendDecision(ctx, &store.MasteryDecisionData{
		LearnerID: "L1", ObjectiveID: "o1", Decision: "achieved",
		MasteryLevel: 0.9, Confidence: 0.88, EvidenceCount: 6, Timestamp: time.Now(),
	}))
	require.NoError(t, m.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "sess-1", LearnerID: "L1", Action: "end",
		ElapsedSecs: 600, ActiveSecs: 540, EventCount: 12, FinalDifficulty: 4,
		Timestamp: time.Now(),
	}))
	require.NoError(t, m.AppendAdaptationEvent(ctx, store.AdaptationEventData{
		SessionID: "sess-1", LearnerID: "L1", UnitID: "s1",
		Reason: "mastery_pattern", FromDifficulty: 3, ToDifficulty: 4,
		Timestamp: time.Now(),
	}))

	path := filepath.Join(t.TempDir(), "learner.xlsx")
	require.NoError(t, NewExporter(m).WriteWorkbook(ctx, snap, "L1", path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Progress", "Mastery", "Sessions", "Adaptations"}, f.GetSheetList())

	rows, err := f.GetRows("Progress")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[1][0])
	assert.Equal(t, "Adding fractions", rows[1][1])
	assert.Equal(t, "completed", rows[1][3])

	rows, err = f.GetRows("Mastery")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "o1", rows[1][0])
	assert.Equal(t, "achieved", rows[1][1])

	rows, err = f.GetRows("Sessions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "sess-1", rows[1][0])

	rows, err = f.GetRows("Adaptations")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "mastery_pattern", rows[1][2])
}

func TestWriteWorkbookEmptyLearner(t *testing.T) {
	snap, err := hierarchy.Build([]hierarchy.Unit{
		{ID: "s1", Kind: hierarchy.KindSection},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, NewExporter(store.NewMemStore()).WriteWorkbook(context.Background(), snap, "nobody", path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Progress")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}