package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptic/ent"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/masterydecision"
)

func (s *SQLStore) AppendDecision(ctx context.Context, d *MasteryDecisionData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	builder := s.client.MasteryDecision.Create().
		SetSequence(seqNum).
		SetLearnerID(d.LearnerID).
		SetObjectiveID(d.ObjectiveID).
		SetDecision(d.Decision).
		SetMasteryLevel(d.MasteryLevel).
		SetConfidence(d.Confidence).
		SetEvidenceCount(d.EvidenceCount).
		SetTimestamp(d.Timestamp)
	if len(d.Gaps) > 0 {
		builder = builder.SetGaps(d.Gaps)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &UnavailableError{Err: fmt.Errorf("save mastery decision: %w", err)}
	}
	d.Sequence = seqNum
	return nil
}

func (s *SQLStore) LatestDecision(ctx context.Context, learnerID, objectiveID string) (*MasteryDecisionData, error) {
	md, err := s.client.MasteryDecision.Query().
		Where(
			masterydecision.LearnerID(learnerID),
			masterydecision.ObjectiveID(objectiveID),
		).
		Order(ent.Desc(masterydecision.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &UnavailableError{Err: fmt.Errorf("query latest decision: %w", err)}
	}
	return entToDecision(md), nil
}

func (s *SQLStore) DecisionHistory(ctx context.Context, learnerID, objectiveID string) ([]*MasteryDecisionData, error) {
	rows, err := s.client.MasteryDecision.Query().
		Where(
			masterydecision.LearnerID(learnerID),
			masterydecision.ObjectiveID(objectiveID),
		).
		Order(ent.Asc(masterydecision.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("query decision history: %w", err)}
	}
	out := make([]*MasteryDecisionData, len(rows))
	for i, md := range rows {
		out[i] = entToDecision(md)
	}
	return out, nil
}

func (s *SQLStore) AppendEvidence(ctx context.Context, ev *EvidenceData) error {
	builder := s.client.AssessmentEvidence.Create().
		SetLearnerID(ev.LearnerID).
		SetObjectiveID(ev.ObjectiveID).
		SetScore(ev.Score).
		SetSourceEventID(ev.SourceEventID).
		SetTimestamp(ev.Timestamp)
	if ev.SubSkillID != "" {
		builder = builder.SetSubSkillID(ev.SubSkillID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &UnavailableError{Err: fmt.Errorf("save evidence: %w", err)}
	}
	return nil
}

func (s *SQLStore) ObjectiveEvidence(ctx context.Context, learnerID, objectiveID string) ([]*EvidenceData, error) {
	rows, err := s.client.AssessmentEvidence.Query().
		Where(
			assessmentevidence.LearnerID(learnerID),
			assessmentevidence.ObjectiveID(objectiveID),
		).
		Order(ent.Asc(assessmentevidence.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("query evidence: %w", err)}
	}
	out := make([]*EvidenceData, len(rows))
	for i, row := range rows {
		out[i] = &EvidenceData{
			LearnerID:     row.LearnerID,
			ObjectiveID:   row.ObjectiveID,
			SubSkillID:    row.SubSkillID,
			Score:         row.Score,
			Timestamp:     row.Timestamp,
			SourceEventID: row.SourceEventID,
		}
	}
	return out, nil
}

func entToDecision(md *ent.MasteryDecision) *MasteryDecisionData {
	return &MasteryDecisionData{
		Sequence:      md.Sequence,
		LearnerID:     md.LearnerID,
		ObjectiveID:   md.ObjectiveID,
		Decision:      md.Decision,
		MasteryLevel:  md.MasteryLevel,
		Confidence:    md.Confidence,
		Gaps:          md.Gaps,
		EvidenceCount: md.EvidenceCount,
		Timestamp:     md.Timestamp,
	}
}
