package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests and ":memory:" runs.
// A transaction clones the full state, applies writes to the clone and
// swaps it in on success, so partial applies are never observable.
type MemStore struct {
	mu   sync.Mutex
	data *memData
	// inTx views skip locking; they are confined to the WithinTx goroutine.
	inTx bool
}

type memData struct {
	records          map[string]*ProgressRecord // learner|unit
	decisions        map[string][]*MasteryDecisionData
	evidence         map[string][]*EvidenceData
	commits          map[string]*CommitRecordData
	sessionEvents    []*SessionEventData
	adaptationEvents []*AdaptationEventData
	llmEvents        []LLMRequestEventData
	seq              int64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: newMemData()}
}

func newMemData() *memData {
	return &memData{
		records:   make(map[string]*ProgressRecord),
		decisions: make(map[string][]*MasteryDecisionData),
		evidence:  make(map[string][]*EvidenceData),
		commits:   make(map[string]*CommitRecordData),
	}
}

func (d *memData) clone() *memData {
	cp := newMemData()
	for k, v := range d.records {
		cp.records[k] = v.Clone()
	}
	for k, v := range d.decisions {
		cp.decisions[k] = append([]*MasteryDecisionData(nil), v...)
	}
	for k, v := range d.evidence {
		cp.evidence[k] = append([]*EvidenceData(nil), v...)
	}
	for k, v := range d.commits {
		cp.commits[k] = v
	}
	cp.sessionEvents = append([]*SessionEventData(nil), d.sessionEvents...)
	cp.adaptationEvents = append([]*AdaptationEventData(nil), d.adaptationEvents...)
	cp.llmEvents = append([]LLMRequestEventData(nil), d.llmEvents...)
	cp.seq = d.seq
	return cp
}

func recordKey(learnerID, unitID string) string  { return learnerID + "|" + unitID }
func decisionKey(learnerID, objID string) string { return learnerID + "|" + objID }

func (m *MemStore) lock() func() {
	if m.inTx {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *MemStore) GetRecord(_ context.Context, learnerID, unitID string) (*ProgressRecord, error) {
	defer m.lock()()
	rec, ok := m.data.records[recordKey(learnerID, unitID)]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (m *MemStore) PutRecord(_ context.Context, rec *ProgressRecord, expectedVersion int64) error {
	defer m.lock()()
	key := recordKey(rec.LearnerID, rec.UnitID)
	existing := m.data.records[key]

	var actual int64
	if existing != nil {
		actual = existing.Version
	}
	if actual != expectedVersion {
		return &ConflictError{
			LearnerID: rec.LearnerID,
			UnitID:    rec.UnitID,
			Expected:  expectedVersion,
			Actual:    actual,
		}
	}

	stored := rec.Clone()
	stored.Version = actual + 1
	m.data.records[key] = stored
	rec.Version = stored.Version
	return nil
}

func (m *MemStore) LearnerRecords(_ context.Context, learnerID string) ([]*ProgressRecord, error) {
	defer m.lock()()
	var out []*ProgressRecord
	for _, rec := range m.data.records {
		if rec.LearnerID == learnerID {
			out = append(out, rec.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out, nil
}

func (m *MemStore) AppendDecision(_ context.Context, d *MasteryDecisionData) error {
	defer m.lock()()
	m.data.seq++
	d.Sequence = m.data.seq
	cp := *d
	key := decisionKey(d.LearnerID, d.ObjectiveID)
	m.data.decisions[key] = append(m.data.decisions[key], &cp)
	return nil
}

func (m *MemStore) LatestDecision(_ context.Context, learnerID, objectiveID string) (*MasteryDecisionData, error) {
	defer m.lock()()
	ds := m.data.decisions[decisionKey(learnerID, objectiveID)]
	if len(ds) == 0 {
		return nil, nil
	}
	cp := *ds[len(ds)-1]
	return &cp, nil
}

func (m *MemStore) DecisionHistory(_ context.Context, learnerID, objectiveID string) ([]*MasteryDecisionData, error) {
	defer m.lock()()
	ds := m.data.decisions[decisionKey(learnerID, objectiveID)]
	out := make([]*MasteryDecisionData, len(ds))
	for i, d := range ds {
		cp := *d
		out[i] = &cp
	}
	return out, nil
}

func (m *MemStore) AppendEvidence(_ context.Context, ev *EvidenceData) error {
	defer m.lock()()
	cp := *ev
	key := decisionKey(ev.LearnerID, ev.ObjectiveID)
	m.data.evidence[key] = append(m.data.evidence[key], &cp)
	return nil
}

func (m *MemStore) ObjectiveEvidence(_ context.Context, learnerID, objectiveID string) ([]*EvidenceData, error) {
	defer m.lock()()
	evs := m.data.evidence[decisionKey(learnerID, objectiveID)]
	out := make([]*EvidenceData, len(evs))
	for i, ev := range evs {
		cp := *ev
		out[i] = &cp
	}
	return out, nil
}

func (m *MemStore) GetCommit(_ context.Context, eventID string) (*CommitRecordData, error) {
	defer m.lock()()
	rec, ok := m.data.commits[eventID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *MemStore) PutCommit(_ context.Context, rec *CommitRecordData) error {
	defer m.lock()()
	cp := *rec
	m.data.commits[rec.EventID] = &cp
	return nil
}

func (m *MemStore) PruneCommits(_ context.Context, olderThan time.Time) (int, error) {
	defer m.lock()()
	n := 0
	for id, rec := range m.data.commits {
		if rec.CommittedAt.Before(olderThan) {
			delete(m.data.commits, id)
			n++
		}
	}
	return n, nil
}

func (m *MemStore) AppendSessionEvent(_ context.Context, data SessionEventData) error {
	defer m.lock()()
	m.data.seq++
	data.Sequence = m.data.seq
	m.data.sessionEvents = append(m.data.sessionEvents, &data)
	return nil
}

func (m *MemStore) AppendAdaptationEvent(_ context.Context, data AdaptationEventData) error {
	defer m.lock()()
	m.data.seq++
	data.Sequence = m.data.seq
	m.data.adaptationEvents = append(m.data.adaptationEvents, &data)
	return nil
}

func (m *MemStore) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	defer m.lock()()
	m.data.llmEvents = append(m.data.llmEvents, data)
	return nil
}

func (m *MemStore) SessionEvents(_ context.Context, learnerID string) ([]*SessionEventData, error) {
	defer m.lock()()
	var out []*SessionEventData
	for _, ev := range m.data.sessionEvents {
		if ev.LearnerID == learnerID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MemStore) AdaptationEvents(_ context.Context, learnerID string) ([]*AdaptationEventData, error) {
	defer m.lock()()
	var out []*AdaptationEventData
	for _, ev := range m.data.adaptationEvents {
		if ev.LearnerID == learnerID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MemStore) WithinTx(_ context.Context, fn func(tx Store) error) error {
	if m.inTx {
		return fn(m)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	view := &MemStore{data: m.data.clone(), inTx: true}
	if err := fn(view); err != nil {
		return err
	}
	m.data = view.data
	return nil
}

func (m *MemStore) ResetLearner(_ context.Context, learnerID string) error {
	defer m.lock()()
	for key, rec := range m.data.records {
		if rec.LearnerID == learnerID {
			delete(m.data.records, key)
		}
	}
	for key, ds := range m.data.decisions {
		if len(ds) > 0 && ds[0].LearnerID == learnerID {
			delete(m.data.decisions, key)
		}
	}
	for key, evs := range m.data.evidence {
		if len(evs) > 0 && evs[0].LearnerID == learnerID {
			delete(m.data.evidence, key)
		}
	}
	for id, rec := range m.data.commits {
		if rec.LearnerID == learnerID {
			delete(m.data.commits, id)
		}
	}
	return nil
}

func (m *MemStore) Close() error { return nil }
