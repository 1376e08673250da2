package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/adaptic/ent"
	"github.com/abhisek/adaptic/ent/commitrecord"
)

func (s *SQLStore) GetCommit(ctx context.Context, eventID string) (*CommitRecordData, error) {
	cr, err := s.client.CommitRecord.Query().
		Where(commitrecord.EventID(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &UnavailableError{Err: fmt.Errorf("query commit record: %w", err)}
	}

	raw, err := json.Marshal(cr.Result)
	if err != nil {
		return nil, fmt.Errorf("marshal commit result: %w", err)
	}
	return &CommitRecordData{
		EventID:     cr.EventID,
		LearnerID:   cr.LearnerID,
		Result:      raw,
		CommittedAt: cr.CommittedAt,
	}, nil
}

func (s *SQLStore) PutCommit(ctx context.Context, rec *CommitRecordData) error {
	// ent stores JSON as a map, so round-trip the raw bytes.
	var resultMap map[string]any
	if err := json.Unmarshal(rec.Result, &resultMap); err != nil {
		return fmt.Errorf("unmarshal commit result: %w", err)
	}

	_, err := s.client.CommitRecord.Create().
		SetEventID(rec.EventID).
		SetLearnerID(rec.LearnerID).
		SetResult(resultMap).
		SetCommittedAt(rec.CommittedAt).
		Save(ctx)
	if err != nil {
		return &UnavailableError{Err: fmt.Errorf("save commit record: %w", err)}
	}
	return nil
}

func (s *SQLStore) PruneCommits(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.client.CommitRecord.Delete().
		Where(commitrecord.CommittedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, &UnavailableError{Err: fmt.Errorf("prune commit records: %w", err)}
	}
	return n, nil
}
