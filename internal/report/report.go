// Package report writes a per-learner progress workbook: one sheet each
// for progress records, mastery decisions, session history and
// adaptation history.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

// Exporter reads a learner's engine state and renders it to xlsx.
type Exporter struct {
	store store.Store
}

// NewExporter creates an Exporter over the store.
func NewExporter(st store.Store) *Exporter {
	return &Exporter{store: st}
}

// WriteWorkbook writes the learner's workbook to path. The hierarchy
// snapshot supplies unit names and the objective list.
func (e *Exporter) WriteWorkbook(ctx context.Context, snap *hierarchy.Snapshot, learnerID, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeProgress(ctx, f, snap, learnerID); err != nil {
		return err
	}
	if err := e.writeMastery(ctx, f, snap, learnerID); err != nil {
		return err
	}
	if err := e.writeSessions(ctx, f, learnerID); err != nil {
		return err
	}
	if err := e.writeAdaptations(ctx, f, learnerID); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeProgress(ctx context.Context, f *excelize.File, snap *hierarchy.Snapshot, learnerID string) error {
	// The default sheet becomes the progress sheet.
	if err := f.SetSheetName("Sheet1", "Progress"); err != nil {
		return err
	}
	if err := setRow(f, "Progress", 1,
		"Unit", "Name", "Kind", "Status", "Fraction", "Time Spent (s)", "Attempts", "Best Score", "Updated"); err != nil {
		return err
	}

	recs, err := e.store.LearnerRecords(ctx, learnerID)
	if err != nil {
		return err
	}
	for i, rec := range recs {
		name, kind := "", ""
		if u, err := snap.Unit(rec.UnitID); err == nil {
			name, kind = u.Name, string(u.Kind)
		}
		best := any("")
		if rec.BestScore != nil {
			best = *rec.BestScore
		}
		if err := setRow(f, "Progress", i+2,
			rec.UnitID, name, kind, string(rec.Status), rec.Fraction,
			rec.TimeSpentSecs, rec.Attempts, best, rec.UpdatedAt.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeMastery(ctx context.Context, f *excelize.File, snap *hierarchy.Snapshot, learnerID string) error {
	if _, err := f.NewSheet("Mastery"); err != nil {
		return err
	}
	if err := setRow(f, "Mastery", 1,
		"Objective", "Decision", "Level", "Confidence", "Evidence", "Gaps", "Timestamp"); err != nil {
		return err
	}

	row := 2
	for _, u := range snap.Units() {
		if u.Objective == "" {
			continue
		}
		history, err := e.store.DecisionHistory(ctx, learnerID, u.Objective)
		if err != nil {
			return err
		}
		for _, d := range history {
			if err := setRow(f, "Mastery", row,
				d.ObjectiveID, d.Decision, d.MasteryLevel, d.Confidence,
				d.EvidenceCount, strings.Join(d.Gaps, ", "),
				d.Timestamp.Format("2006-01-02 15:04:05")); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (e *Exporter) writeSessions(ctx context.Context, f *excelize.File, learnerID string) error {
	if _, err := f.NewSheet("Sessions"); err != nil {
		return err
	}
	if err := setRow(f, "Sessions", 1,
		"Session", "Action", "Elapsed (s)", "Active (s)", "Events", "Final Difficulty", "Timestamp"); err != nil {
		return err
	}

	events, err := e.store.SessionEvents(ctx, learnerID)
	if err != nil {
		return err
	}
	for i, ev := range events {
		if err := setRow(f, "Sessions", i+2,
			ev.SessionID, ev.Action, ev.ElapsedSecs, ev.ActiveSecs,
			ev.EventCount, ev.FinalDifficulty,
			ev.Timestamp.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeAdaptations(ctx context.Context, f *excelize.File, learnerID string) error {
	if _, err := f.NewSheet("Adaptations"); err != nil {
		return err
	}
	if err := setRow(f, "Adaptations", 1,
		"Session", "Unit", "Reason", "From", "To", "Recommended", "Timestamp"); err != nil {
		return err
	}

	events, err := e.store.AdaptationEvents(ctx, learnerID)
	if err != nil {
		return err
	}
	for i, ev := range events {
		if err := setRow(f, "Adaptations", i+2,
			ev.SessionID, ev.UnitID, ev.Reason, ev.FromDifficulty, ev.ToDifficulty,
			ev.RecommendedUnitID, ev.Timestamp.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
