package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptic/ent"
	"github.com/abhisek/adaptic/ent/progressrecord"
)

func (s *SQLStore) GetRecord(ctx context.Context, learnerID, unitID string) (*ProgressRecord, error) {
	pr, err := s.client.ProgressRecord.Query().
		Where(
			progressrecord.LearnerID(learnerID),
			progressrecord.UnitID(unitID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &UnavailableError{Err: fmt.Errorf("query progress record: %w", err)}
	}
	return entToProgressRecord(pr), nil
}

func (s *SQLStore) PutRecord(ctx context.Context, rec *ProgressRecord, expectedVersion int64) error {
	if expectedVersion == 0 {
		create := s.client.ProgressRecord.Create().
			SetLearnerID(rec.LearnerID).
			SetUnitID(rec.UnitID).
			SetStatus(string(rec.Status)).
			SetFraction(rec.Fraction).
			SetTimeSpentSecs(rec.TimeSpentSecs).
			SetAttempts(rec.Attempts).
			SetVersion(1).
			SetUpdatedAt(rec.UpdatedAt)
		if rec.BestScore != nil {
			create = create.SetBestScore(*rec.BestScore)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Someone created the record between our read and write.
				return s.conflict(ctx, rec, expectedVersion)
			}
			return &UnavailableError{Err: fmt.Errorf("create progress record: %w", err)}
		}
		rec.Version = 1
		return nil
	}

	update := s.client.ProgressRecord.Update().
		Where(
			progressrecord.LearnerID(rec.LearnerID),
			progressrecord.UnitID(rec.UnitID),
			progressrecord.Version(expectedVersion),
		).
		SetStatus(string(rec.Status)).
		SetFraction(rec.Fraction).
		SetTimeSpentSecs(rec.TimeSpentSecs).
		SetAttempts(rec.Attempts).
		SetVersion(expectedVersion + 1).
		SetUpdatedAt(rec.UpdatedAt)
	if rec.BestScore != nil {
		update = update.SetBestScore(*rec.BestScore)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return &UnavailableError{Err: fmt.Errorf("update progress record: %w", err)}
	}
	if n == 0 {
		return s.conflict(ctx, rec, expectedVersion)
	}
	rec.Version = expectedVersion + 1
	return nil
}

// conflict builds a ConflictError with the actual stored version.
func (s *SQLStore) conflict(ctx context.Context, rec *ProgressRecord, expected int64) error {
	conflict := &ConflictError{
		LearnerID: rec.LearnerID,
		UnitID:    rec.UnitID,
		Expected:  expected,
	}
	if current, err := s.GetRecord(ctx, rec.LearnerID, rec.UnitID); err == nil && current != nil {
		conflict.Actual = current.Version
	}
	return conflict
}

func (s *SQLStore) LearnerRecords(ctx context.Context, learnerID string) ([]*ProgressRecord, error) {
	rows, err := s.client.ProgressRecord.Query().
		Where(progressrecord.LearnerID(learnerID)).
		Order(ent.Asc(progressrecord.FieldUnitID)).
		All(ctx)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("query learner records: %w", err)}
	}
	out := make([]*ProgressRecord, len(rows))
	for i, pr := range rows {
		out[i] = entToProgressRecord(pr)
	}
	return out, nil
}

func entToProgressRecord(pr *ent.ProgressRecord) *ProgressRecord {
	rec := &ProgressRecord{
		LearnerID:     pr.LearnerID,
		UnitID:        pr.UnitID,
		Status:        ProgressStatus(pr.Status),
		Fraction:      pr.Fraction,
		TimeSpentSecs: pr.TimeSpentSecs,
		Attempts:      pr.Attempts,
		Version:       pr.Version,
		UpdatedAt:     pr.UpdatedAt,
	}
	if pr.BestScore != nil {
		v := *pr.BestScore
		rec.BestScore = &v
	}
	return rec
}
