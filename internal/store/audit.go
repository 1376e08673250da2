package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptic/ent"
	"github.com/abhisek/adaptic/ent/adaptationevent"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/commitrecord"
	"github.com/abhisek/adaptic/ent/masterydecision"
	"github.com/abhisek/adaptic/ent/progressrecord"
	"github.com/abhisek/adaptic/ent/sessionevent"
)

func (s *SQLStore) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	_, err = s.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetAction(data.Action).
		SetElapsedSecs(data.ElapsedSecs).
		SetActiveSecs(data.ActiveSecs).
		SetEventCount(data.EventCount).
		SetFinalDifficulty(data.FinalDifficulty).
		Save(ctx)
	if err != nil {
		return &UnavailableError{Err: fmt.Errorf("save session event: %w", err)}
	}
	return nil
}

func (s *SQLStore) AppendAdaptationEvent(ctx context.Context, data AdaptationEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	builder := s.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetUnitID(data.UnitID).
		SetReason(data.Reason).
		SetFromDifficulty(data.FromDifficulty).
		SetToDifficulty(data.ToDifficulty)
	if data.RecommendedUnitID != "" {
		builder = builder.SetRecommendedUnitID(data.RecommendedUnitID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &UnavailableError{Err: fmt.Errorf("save adaptation event: %w", err)}
	}
	return nil
}

func (s *SQLStore) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	builder := s.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &UnavailableError{Err: fmt.Errorf("save llm request event: %w", err)}
	}
	return nil
}

func (s *SQLStore) SessionEvents(ctx context.Context, learnerID string) ([]*SessionEventData, error) {
	rows, err := s.client.SessionEvent.Query().
		Where(sessionevent.LearnerID(learnerID)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("query session events: %w", err)}
	}
	out := make([]*SessionEventData, len(rows))
	for i, row := range rows {
		out[i] = &SessionEventData{
			Sequence:        row.Sequence,
			SessionID:       row.SessionID,
			LearnerID:       row.LearnerID,
			Action:          row.Action,
			ElapsedSecs:     row.ElapsedSecs,
			ActiveSecs:      row.ActiveSecs,
			EventCount:      row.EventCount,
			FinalDifficulty: row.FinalDifficulty,
			Timestamp:       row.Timestamp,
		}
	}
	return out, nil
}

func (s *SQLStore) AdaptationEvents(ctx context.Context, learnerID string) ([]*AdaptationEventData, error) {
	rows, err := s.client.AdaptationEvent.Query().
		Where(adaptationevent.LearnerID(learnerID)).
		Order(ent.Asc(adaptationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("query adaptation events: %w", err)}
	}
	out := make([]*AdaptationEventData, len(rows))
	for i, row := range rows {
		out[i] = &AdaptationEventData{
			Sequence:          row.Sequence,
			SessionID:         row.SessionID,
			LearnerID:         row.LearnerID,
			UnitID:            row.UnitID,
			Reason:            row.Reason,
			FromDifficulty:    row.FromDifficulty,
			ToDifficulty:      row.ToDifficulty,
			RecommendedUnitID: row.RecommendedUnitID,
			Timestamp:         row.Timestamp,
		}
	}
	return out, nil
}

// ResetLearner removes all engine state for a learner. Runs in a single
// transaction so a partial wipe is never observable.
func (s *SQLStore) ResetLearner(ctx context.Context, learnerID string) error {
	return s.WithinTx(ctx, func(tx Store) error {
		view := tx.(*SQLStore)
		if _, err := view.client.ProgressRecord.Delete().
			Where(progressrecord.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete progress records: %w", err)
		}
		if _, err := view.client.MasteryDecision.Delete().
			Where(masterydecision.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete mastery decisions: %w", err)
		}
		if _, err := view.client.AssessmentEvidence.Delete().
			Where(assessmentevidence.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete evidence: %w", err)
		}
		if _, err := view.client.CommitRecord.Delete().
			Where(commitrecord.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete commit records: %w", err)
		}
		if _, err := view.client.SessionEvent.Delete().
			Where(sessionevent.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete session events: %w", err)
		}
		if _, err := view.client.AdaptationEvent.Delete().
			Where(adaptationevent.LearnerID(learnerID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete adaptation events: %w", err)
		}
		return nil
	})
}
