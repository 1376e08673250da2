// Package session tracks live learning sessions: one active session per
// learner, rolling elapsed/active time, and the bounded event log that
// feeds adaptation. Sessions become immutable once ended.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

const (
	// DefaultIdleThreshold is the maximum gap between events still
	// counted as active time.
	DefaultIdleThreshold = 120 * time.Second

	// DefaultIdleTimeout ends a session that has seen no events at all
	// for this long.
	DefaultIdleTimeout = 30 * time.Minute

	// maxEventLog bounds the per-session interaction log. Older entries
	// are dropped; counters are unaffected.
	maxEventLog = 256
)

// Event is one interaction recorded against a session.
type Event struct {
	EventID    string
	UnitID     string
	Correct    bool
	ResponseMs int64
	ExpectedMs int64
	Confidence *float64 // self-reported, optional
	Timestamp  time.Time
}

// Summary is the immutable result of an ended session.
type Summary struct {
	SessionID       string
	LearnerID       string
	StartedAt       time.Time
	EndedAt         time.Time
	ElapsedSecs     int64
	ActiveSecs      int64
	EventCount      int
	FinalDifficulty int
}

type liveSession struct {
	id          string
	learnerID   string
	startedAt   time.Time
	lastEventAt time.Time
	active      time.Duration
	events      []Event
	eventCount  int
	difficulty  int
}

// Tracker owns all live sessions. The coordinator serializes event
// submission per learner, but the idle reaper runs on its own schedule,
// so the tracker locks internally.
type Tracker struct {
	mu        sync.Mutex
	audit     store.AuditRepo
	log       *slog.Logger
	clock     func() time.Time
	idleGap   time.Duration
	idleLimit time.Duration

	byID      map[string]*liveSession
	byLearner map[string]string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIdleThreshold overrides the active-time gap threshold.
func WithIdleThreshold(d time.Duration) Option {
	return func(t *Tracker) { t.idleGap = d }
}

// WithIdleTimeout overrides the implicit session-end timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(t *Tracker) { t.idleLimit = d }
}

// WithClock overrides the tracker clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) { t.clock = clock }
}

// NewTracker creates a Tracker that writes lifecycle events to audit.
func NewTracker(audit store.AuditRepo, log *slog.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		audit:     audit,
		log:       log,
		clock:     time.Now,
		idleGap:   DefaultIdleThreshold,
		idleLimit: DefaultIdleTimeout,
		byID:      make(map[string]*liveSession),
		byLearner: make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start returns the learner's active session ID, creating a session if
// none is live. Idempotent: a second Start for the same learner returns
// the existing session rather than a duplicate.
func (t *Tracker) Start(ctx context.Context, learnerID string) (string, error) {
	if learnerID == "" {
		return "", fmt.Errorf("session: empty learner id")
	}

	t.mu.Lock()
	if id, ok := t.byLearner[learnerID]; ok {
		t.mu.Unlock()
		return id, nil
	}
	now := t.clock()
	s := &liveSession{
		id:          uuid.NewString(),
		learnerID:   learnerID,
		startedAt:   now,
		lastEventAt: now,
		difficulty:  hierarchy.DefaultDifficulty,
	}
	t.byID[s.id] = s
	t.byLearner[learnerID] = s.id
	t.mu.Unlock()

	if err := t.audit.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.id,
		LearnerID: learnerID,
		Action:    "start",
		Timestamp: now,
	}); err != nil {
		t.log.Warn("session start audit failed", "session", s.id, "err", err)
	}
	t.log.Info("session started", "session", s.id, "learner", learnerID)
	return s.id, nil
}

// Record adds an interaction to the session's counters and log. Active
// time accrues only when the gap since the previous event is under the
// idle threshold; longer gaps are excluded but don't end the session.
func (t *Tracker) Record(sessionID string, ev Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.byID[sessionID]
	if !ok {
		return &ClosedError{SessionID: sessionID}
	}

	now := ev.Timestamp
	if now.IsZero() {
		now = t.clock()
	}
	if gap := now.Sub(s.lastEventAt); gap > 0 && gap < t.idleGap {
		s.active += gap
	}
	if now.After(s.lastEventAt) {
		s.lastEventAt = now
	}

	ev.Timestamp = now
	s.events = append(s.events, ev)
	if len(s.events) > maxEventLog {
		s.events = s.events[len(s.events)-maxEventLog:]
	}
	s.eventCount++
	return nil
}

// End closes the session, flushes its summary to the audit log, and
// makes the session ID invalid for further Record calls.
func (t *Tracker) End(ctx context.Context, sessionID string) (*Summary, error) {
	t.mu.Lock()
	s, ok := t.byID[sessionID]
	if !ok {
		t.mu.Unlock()
		return nil, &ClosedError{SessionID: sessionID}
	}
	delete(t.byID, sessionID)
	delete(t.byLearner, s.learnerID)
	t.mu.Unlock()

	return t.finalize(ctx, s, t.clock())
}

// ReapIdle ends every session whose last event is older than the idle
// timeout. Returns how many sessions were closed. Run periodically.
func (t *Tracker) ReapIdle(ctx context.Context) (int, error) {
	now := t.clock()
	cutoff := now.Add(-t.idleLimit)

	t.mu.Lock()
	var idle []*liveSession
	for _, s := range t.byID {
		if s.lastEventAt.Before(cutoff) {
			idle = append(idle, s)
		}
	}
	for _, s := range idle {
		delete(t.byID, s.id)
		delete(t.byLearner, s.learnerID)
	}
	t.mu.Unlock()

	for _, s := range idle {
		if _, err := t.finalize(ctx, s, s.lastEventAt.Add(t.idleLimit)); err != nil {
			return 0, err
		}
		t.log.Info("session reaped after idle timeout", "session", s.id, "learner", s.learnerID)
	}
	return len(idle), nil
}

func (t *Tracker) finalize(ctx context.Context, s *liveSession, endedAt time.Time) (*Summary, error) {
	sum := &Summary{
		SessionID:       s.id,
		LearnerID:       s.learnerID,
		StartedAt:       s.startedAt,
		EndedAt:         endedAt,
		ElapsedSecs:     int64(endedAt.Sub(s.startedAt).Seconds()),
		ActiveSecs:      int64(s.active.Seconds()),
		EventCount:      s.eventCount,
		FinalDifficulty: s.difficulty,
	}
	if err := t.audit.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       s.id,
		LearnerID:       s.learnerID,
		Action:          "end",
		ElapsedSecs:     sum.ElapsedSecs,
		ActiveSecs:      sum.ActiveSecs,
		EventCount:      sum.EventCount,
		FinalDifficulty: sum.FinalDifficulty,
		Timestamp:       endedAt,
	}); err != nil {
		t.log.Warn("session end audit failed", "session", s.id, "err", err)
	}
	t.log.Info("session ended",
		"session", s.id,
		"learner", s.learnerID,
		"elapsed_secs", sum.ElapsedSecs,
		"active_secs", sum.ActiveSecs,
		"events", sum.EventCount)
	return sum, nil
}

// ActiveSession returns the live session ID for a learner, if any.
func (t *Tracker) ActiveSession(learnerID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.byLearner[learnerID]
	return id, ok
}

// Learner returns the owning learner of a live session.
func (t *Tracker) Learner(sessionID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byID[sessionID]
	if !ok {
		return "", &ClosedError{SessionID: sessionID}
	}
	return s.learnerID, nil
}

// Difficulty returns the session's current difficulty level.
func (t *Tracker) Difficulty(sessionID string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byID[sessionID]
	if !ok {
		return 0, &ClosedError{SessionID: sessionID}
	}
	return s.difficulty, nil
}

// SetDifficulty updates the session's difficulty after an adaptation.
func (t *Tracker) SetDifficulty(sessionID string, level int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byID[sessionID]
	if !ok {
		return &ClosedError{SessionID: sessionID}
	}
	s.difficulty = level
	return nil
}

// RecentEvents returns up to n most recent events for a session, oldest
// first. The returned slice is a copy.
func (t *Tracker) RecentEvents(sessionID string, n int) ([]Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byID[sessionID]
	if !ok {
		return nil, &ClosedError{SessionID: sessionID}
	}
	events := s.events
	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	out := make([]Event, len(events))
	copy(out, events)
	return out, nil
}
