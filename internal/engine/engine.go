// Package engine assembles the progress, mastery, session, adaptation
// and coordination components behind a single facade. Callers submit
// interaction events and get back a CommitResult; per-learner
// serialization, transactional writes and event publication happen
// inside.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/adaptic/internal/adaptation"
	"github.com/abhisek/adaptic/internal/coordinator"
	"github.com/abhisek/adaptic/internal/events"
	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/mastery"
	"github.com/abhisek/adaptic/internal/progress"
	"github.com/abhisek/adaptic/internal/session"
	"github.com/abhisek/adaptic/internal/store"
)

// InteractionEvent is one learner interaction submitted to the engine.
// EventID is the idempotency key: resubmitting a committed ID returns
// the prior result without reapplying.
type InteractionEvent struct {
	EventID   string
	LearnerID string

	// SessionID scopes the event to a live session. Empty uses the
	// learner's active session, starting one if none is live.
	SessionID string

	// UnitID is the section the interaction happened on.
	UnitID string

	Timestamp time.Time

	// Progress delta.
	Fraction      *float64
	TimeSpentSecs int64
	MarkComplete  bool
	Override      bool

	// Response signal. Answered marks the event as a graded response
	// that feeds the adaptation window.
	Answered   bool
	Correct    bool
	ResponseMs int64
	ExpectedMs int64
	Confidence *float64

	// Assessment evidence. Set both to record evidence against the
	// objective and trigger a mastery re-evaluation.
	ObjectiveID string
	Score       *float64
	SubSkillID  string
}

// CommitResult is everything one committed event produced.
type CommitResult struct {
	EventID    string                     `json:"eventId"`
	SessionID  string                     `json:"sessionId"`
	Records    []*store.ProgressRecord    `json:"records,omitempty"`
	Mastery    *store.MasteryDecisionData `json:"mastery,omitempty"`
	Adaptation *adaptation.Decision       `json:"adaptation,omitempty"`
}

// ConsentPolicy gates personalization. The engine treats learner
// privacy flags as opaque; when the policy denies a learner, difficulty
// adaptation and model recommendations stay off while progress and
// mastery tracking continue.
type ConsentPolicy interface {
	PersonalizationAllowed(ctx context.Context, learnerID string) bool
}

type allowAll struct{}

func (allowAll) PersonalizationAllowed(context.Context, string) bool { return true }

// Engine is the facade over the full event pipeline.
type Engine struct {
	store   store.Store
	units   *hierarchy.Holder
	tracker *session.Tracker
	agg     *progress.Aggregator
	eval    *mastery.Evaluator
	adapt   *adaptation.Engine
	coord   *coordinator.Coordinator
	bus     *events.Bus
	consent ConsentPolicy
	log     *slog.Logger
	clock   func() time.Time
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	consent     ConsentPolicy
	clock       func() time.Time
	busWorkers  int
	sessionOpts []session.Option
	masteryOpts []mastery.Option
	adaptOpts   []adaptation.Option
	coordOpts   []coordinator.Option
}

// WithConsentPolicy sets the personalization gate. Default allows all.
func WithConsentPolicy(p ConsentPolicy) Option {
	return func(o *options) { o.consent = p }
}

// WithClock overrides the engine clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithSessionOptions forwards options to the session tracker.
func WithSessionOptions(opts ...session.Option) Option {
	return func(o *options) { o.sessionOpts = append(o.sessionOpts, opts...) }
}

// WithMasteryOptions forwards options to the mastery evaluator.
func WithMasteryOptions(opts ...mastery.Option) Option {
	return func(o *options) { o.masteryOpts = append(o.masteryOpts, opts...) }
}

// WithAdaptationOptions forwards options to the adaptation engine.
func WithAdaptationOptions(opts ...adaptation.Option) Option {
	return func(o *options) { o.adaptOpts = append(o.adaptOpts, opts...) }
}

// WithCoordinatorOptions forwards options to the event coordinator.
func WithCoordinatorOptions(opts ...coordinator.Option) Option {
	return func(o *options) { o.coordOpts = append(o.coordOpts, opts...) }
}

// New wires an Engine over the given store and hierarchy. rec may be
// nil, in which case adaptation decisions never carry a recommended
// unit. The engine does not own the store; the caller closes it after
// Close.
func New(st store.Store, units *hierarchy.Holder, rec adaptation.Recommender, log *slog.Logger, opts ...Option) *Engine {
	o := &options{
		consent:    allowAll{},
		clock:      time.Now,
		busWorkers: 8,
	}
	for _, opt := range opts {
		opt(o)
	}
	sessionOpts := append([]session.Option{session.WithClock(o.clock)}, o.sessionOpts...)
	return &Engine{
		store:   st,
		units:   units,
		tracker: session.NewTracker(st, log, sessionOpts...),
		agg:     progress.NewAggregator(),
		eval:    mastery.NewEvaluator(o.masteryOpts...),
		adapt:   adaptation.NewEngine(rec, st, log, o.adaptOpts...),
		coord:   coordinator.New(st, log, o.coordOpts...),
		bus:     events.NewBus(o.busWorkers, log),
		consent: o.consent,
		log:     log,
		clock:   o.clock,
	}
}

// Bus exposes the emitted-event bus for downstream subscribers.
func (e *Engine) Bus() *events.Bus { return e.bus }

// Hierarchy returns the active hierarchy snapshot.
func (e *Engine) Hierarchy() *hierarchy.Snapshot { return e.units.Current() }

// RefreshHierarchy swaps in a freshly built snapshot from the provider.
func (e *Engine) RefreshHierarchy(ctx context.Context, p hierarchy.Provider) error {
	return e.units.Refresh(ctx, p)
}

// StartSession returns the learner's active session, creating one if
// none is live.
func (e *Engine) StartSession(ctx context.Context, learnerID string) (string, error) {
	return e.tracker.Start(ctx, learnerID)
}

// EndSession finalizes a session and drops its adaptation window.
func (e *Engine) EndSession(ctx context.Context, sessionID string) (*session.Summary, error) {
	sum, err := e.tracker.End(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	e.adapt.Forget(sessionID)
	return sum, nil
}

// Submit runs one interaction event through the full pipeline:
// transactional progress and mastery writes, session counters, then
// adaptation.
// Events for one learner apply in submission order; duplicates by
// EventID return the original result.
func (e *Engine) Submit(ctx context.Context, ev InteractionEvent) (*CommitResult, error) {
	if ev.UnitID == "" {
		return nil, &progress.ValidationError{Field: "unitId", Reason: "required"}
	}
	if ev.Score == nil && ev.ObjectiveID != "" {
		return nil, &progress.ValidationError{Field: "score", Reason: "required when objectiveId is set"}
	}
	// Rejected events must leave no trace, including session counters,
	// so range checks run before anything is touched.
	if ev.Fraction != nil && (*ev.Fraction < 0 || *ev.Fraction > 1) {
		return nil, &progress.ValidationError{Field: "fraction", Reason: fmt.Sprintf("%v outside [0,1]", *ev.Fraction)}
	}
	if ev.Score != nil && (*ev.Score < 0 || *ev.Score > 1) {
		return nil, &progress.ValidationError{Field: "score", Reason: fmt.Sprintf("%v outside [0,1]", *ev.Score)}
	}
	if ev.TimeSpentSecs < 0 {
		return nil, &progress.ValidationError{Field: "timeSpentSecs", Reason: "negative duration"}
	}

	payload, err := e.coord.Submit(ctx, ev.LearnerID, ev.EventID, func(ctx context.Context) (json.RawMessage, error) {
		res, err := e.apply(ctx, ev)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("encode commit result: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	var res CommitResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("decode commit result: %w", err)
	}
	return &res, nil
}

// apply is the serialized per-learner state transition for one event.
func (e *Engine) apply(ctx context.Context, ev InteractionEvent) (*CommitResult, error) {
	snap := e.units.Current()
	if !snap.Has(ev.UnitID) {
		return nil, &progress.ValidationError{Field: "unitId", Reason: fmt.Sprintf("unknown unit %q", ev.UnitID)}
	}
	now := ev.Timestamp
	if now.IsZero() {
		now = e.clock()
	}

	sessionID := ev.SessionID
	if sessionID == "" {
		id, err := e.tracker.Start(ctx, ev.LearnerID)
		if err != nil {
			return nil, err
		}
		sessionID = id
	} else if owner, err := e.tracker.Learner(sessionID); err != nil {
		return nil, err
	} else if owner != ev.LearnerID {
		return nil, &progress.ValidationError{Field: "sessionId", Reason: "session belongs to a different learner"}
	}

	prevLevel, err := e.tracker.Difficulty(sessionID)
	if err != nil {
		return nil, err
	}

	res := &CommitResult{EventID: ev.EventID, SessionID: sessionID}
	var newlyAchieved bool

	err = e.store.WithinTx(ctx, func(tx store.Store) error {
		records, err := e.agg.ApplySectionProgress(ctx, tx, snap, ev.LearnerID, ev.UnitID, progress.Delta{
			Fraction:      ev.Fraction,
			TimeSpentSecs: ev.TimeSpentSecs,
			Score:         ev.Score,
			MarkComplete:  ev.MarkComplete,
			Override:      ev.Override,
		})
		if err != nil {
			return err
		}
		res.Records = records

		if ev.ObjectiveID == "" || ev.Score == nil {
			return nil
		}
		prior, err := tx.LatestDecision(ctx, ev.LearnerID, ev.ObjectiveID)
		if err != nil {
			return err
		}
		decision, err := e.eval.Evaluate(ctx, tx, snap, ev.LearnerID, ev.ObjectiveID, []mastery.Evidence{{
			SubSkillID:    ev.SubSkillID,
			Score:         *ev.Score,
			Timestamp:     now,
			SourceEventID: ev.EventID,
		}})
		if err != nil {
			return err
		}
		res.Mastery = decision
		newlyAchieved = decision.Decision == mastery.DecisionAchieved &&
			(prior == nil || prior.Decision != mastery.DecisionAchieved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Session counters move only after the transaction commits: a
	// rejected event, or a retried attempt that never committed, must
	// leave no trace in the session. The session can only close between
	// the ownership check and here via the idle reaper; the commit
	// stands either way, so a late close just loses the counter.
	if err := e.tracker.Record(sessionID, session.Event{
		EventID:    ev.EventID,
		UnitID:     ev.UnitID,
		Correct:    ev.Correct,
		ResponseMs: ev.ResponseMs,
		ExpectedMs: ev.ExpectedMs,
		Confidence: ev.Confidence,
		Timestamp:  now,
	}); err != nil {
		e.log.Warn("session record after commit failed", "session", sessionID, "err", err)
	}

	if ev.Answered && e.consent.PersonalizationAllowed(ctx, ev.LearnerID) {
		res.Adaptation = e.observeAdaptation(ctx, snap, sessionID, ev, prevLevel, res.Records)
	}

	e.publish(res, ev, newlyAchieved, now)
	return res, nil
}

// observeAdaptation feeds the response signal into the session window.
// Adaptation failures never fail the committed event.
func (e *Engine) observeAdaptation(ctx context.Context, snap *hierarchy.Snapshot, sessionID string, ev InteractionEvent, prevLevel int, records []*store.ProgressRecord) *adaptation.Decision {
	fraction := 0.0
	for _, rec := range records {
		if rec.UnitID == ev.UnitID {
			fraction = rec.Fraction
			break
		}
	}

	decision, err := e.adapt.Observe(ctx, snap, sessionID, ev.LearnerID, prevLevel, adaptation.Signal{
		UnitID:     ev.UnitID,
		Correct:    ev.Correct,
		ResponseMs: ev.ResponseMs,
		ExpectedMs: ev.ExpectedMs,
		Confidence: ev.Confidence,
		Fraction:   fraction,
	})
	if err != nil {
		e.log.Warn("adaptation observe failed", "session", sessionID, "err", err)
		return nil
	}
	if decision == nil {
		return nil
	}
	if err := e.tracker.SetDifficulty(sessionID, decision.ToDifficulty); err != nil {
		e.log.Warn("session difficulty update failed", "session", sessionID, "err", err)
	}
	return decision
}

// publish emits the committed event's downstream records. Publication
// is post-commit and fire-and-forget.
func (e *Engine) publish(res *CommitResult, ev InteractionEvent, newlyAchieved bool, at time.Time) {
	if len(res.Records) > 0 {
		unitIDs := make([]string, len(res.Records))
		for i, rec := range res.Records {
			unitIDs[i] = rec.UnitID
		}
		if err := e.bus.Publish(events.NewProgressChanged(ev.LearnerID, unitIDs, at)); err != nil {
			e.log.Warn("publish progress event failed", "err", err)
		}
	}
	if newlyAchieved && res.Mastery != nil {
		if err := e.bus.Publish(events.NewMasteryAchieved(ev.LearnerID, res.Mastery.ObjectiveID, res.Mastery.MasteryLevel, res.Mastery.Confidence, at)); err != nil {
			e.log.Warn("publish mastery event failed", "err", err)
		}
	}
	if d := res.Adaptation; d != nil {
		if err := e.bus.Publish(events.NewDifficultyAdapted(ev.LearnerID, d.SessionID, d.Reason, d.FromDifficulty, d.ToDifficulty, d.RecommendedUnitID, at)); err != nil {
			e.log.Warn("publish adaptation event failed", "err", err)
		}
	}
}

// Progress returns all progress records for a learner.
func (e *Engine) Progress(ctx context.Context, learnerID string) ([]*store.ProgressRecord, error) {
	return e.store.LearnerRecords(ctx, learnerID)
}

// UnitProgress returns the record for one (learner, unit), or nil.
func (e *Engine) UnitProgress(ctx context.Context, learnerID, unitID string) (*store.ProgressRecord, error) {
	return e.store.GetRecord(ctx, learnerID, unitID)
}

// LatestMastery returns the current decision for an objective, or nil.
func (e *Engine) LatestMastery(ctx context.Context, learnerID, objectiveID string) (*store.MasteryDecisionData, error) {
	return e.store.LatestDecision(ctx, learnerID, objectiveID)
}

// MasteryHistory returns the full decision log for an objective.
func (e *Engine) MasteryHistory(ctx context.Context, learnerID, objectiveID string) ([]*store.MasteryDecisionData, error) {
	return e.store.DecisionHistory(ctx, learnerID, objectiveID)
}

// ReapIdleSessions ends sessions past the idle timeout. The janitor
// calls this on a schedule; it is exported for manual runs.
func (e *Engine) ReapIdleSessions(ctx context.Context) (int, error) {
	return e.tracker.ReapIdle(ctx)
}

// PruneCommits drops committed-event records older than the cutoff.
func (e *Engine) PruneCommits(ctx context.Context, olderThan time.Time) (int, error) {
	return e.store.PruneCommits(ctx, olderThan)
}

// ResetLearner wipes all engine state for a learner.
func (e *Engine) ResetLearner(ctx context.Context, learnerID string) error {
	if id, ok := e.tracker.ActiveSession(learnerID); ok {
		if _, err := e.tracker.End(ctx, id); err != nil {
			return err
		}
		e.adapt.Forget(id)
	}
	return e.store.ResetLearner(ctx, learnerID)
}

// Close stops the coordinator and the event bus. In-flight submissions
// finish first. The store stays open; the caller owns it.
func (e *Engine) Close() error {
	e.coord.Close()
	return e.bus.Close()
}
