// Package adaptation watches per-session response signals and adjusts
// the session difficulty level. Adjustments move exactly one level at a
// time on a bounded 1..5 scale and always carry the evidence window
// that produced them.
package adaptation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

const (
	// MinDifficulty and MaxDifficulty bound the ordinal scale.
	MinDifficulty = 1
	MaxDifficulty = 5

	// DefaultWindowSize is the number of consecutive responses a
	// pattern must span before an adjustment fires.
	DefaultWindowSize = 3

	// DefaultRecommendTimeout bounds the content-recommendation lookup.
	// On timeout the decision degrades to no recommended unit.
	DefaultRecommendTimeout = 2 * time.Second

	// lowConfidence marks a self-reported confidence that counts as a
	// struggling response even when the answer was correct and fast.
	lowConfidence = 0.4

	completionTolerance = 1e-9
)

// Adjustment reasons.
const (
	ReasonStruggling = "struggling_pattern"
	ReasonMastery    = "mastery_pattern"
)

// Signal is one response observed during a session.
type Signal struct {
	UnitID     string
	Correct    bool
	ResponseMs int64
	ExpectedMs int64
	Confidence *float64 // self-reported, optional

	// Fraction is the unit's current section-level completion fraction.
	// Upward adaptation is suppressed once the unit is fully complete.
	Fraction float64
}

// struggling is incorrect, correct-but-slow, or correct with very low
// self-reported confidence.
func (s Signal) struggling() bool {
	if !s.Correct {
		return true
	}
	if s.ExpectedMs > 0 && s.ResponseMs > s.ExpectedMs {
		return true
	}
	return s.Confidence != nil && *s.Confidence < lowConfidence
}

// fast is correct within the expected time and not low-confidence.
func (s Signal) fast() bool {
	return s.Correct && !s.struggling()
}

// Decision records one difficulty adjustment and the window that
// produced it.
type Decision struct {
	SessionID         string
	LearnerID         string
	UnitID            string
	Reason            string
	FromDifficulty    int
	ToDifficulty      int
	RecommendedUnitID string // empty when the collaborator had no match
	Window            []Signal
}

// Recommender supplies replacement content scoped to a difficulty
// level. Implementations must respect ctx cancellation.
type Recommender interface {
	Recommend(ctx context.Context, snap *hierarchy.Snapshot, learnerID string, difficulty int, currentUnitID string) (string, error)
}

// Engine evaluates response windows per session. Window state is
// in-memory only; a crashed process simply starts observing fresh.
type Engine struct {
	mu        sync.Mutex
	windows   map[string][]Signal
	windowLen int
	timeout   time.Duration
	rec       Recommender
	audit     store.AuditRepo
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWindowSize overrides the K-response window length.
func WithWindowSize(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.windowLen = k
		}
	}
}

// WithRecommendTimeout overrides the recommendation lookup timeout.
func WithRecommendTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// NewEngine creates an Engine. rec may be nil, in which case decisions
// never carry a recommended unit.
func NewEngine(rec Recommender, audit store.AuditRepo, log *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		windows:   make(map[string][]Signal),
		windowLen: DefaultWindowSize,
		timeout:   DefaultRecommendTimeout,
		rec:       rec,
		audit:     audit,
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Observe feeds one response signal into the session's sliding window
// and returns a Decision if a pattern completed, or nil for no
// adaptation. currentLevel is the session's difficulty before the call;
// the caller applies the returned ToDifficulty to the session.
func (e *Engine) Observe(ctx context.Context, snap *hierarchy.Snapshot, sessionID, learnerID string, currentLevel int, sig Signal) (*Decision, error) {
	e.mu.Lock()
	w := append(e.windows[sessionID], sig)
	if len(w) > e.windowLen {
		w = w[len(w)-e.windowLen:]
	}
	e.windows[sessionID] = w

	var reason string
	switch {
	case len(w) < e.windowLen:
		// Insufficient evidence this session.
	case allStruggling(w):
		reason = ReasonStruggling
	case allFast(w) && sig.Fraction < 1.0-completionTolerance:
		reason = ReasonMastery
	}
	if reason == "" {
		e.mu.Unlock()
		return nil, nil
	}

	to := currentLevel
	if reason == ReasonStruggling {
		to--
	} else {
		to++
	}
	if to < MinDifficulty {
		to = MinDifficulty
	}
	if to > MaxDifficulty {
		to = MaxDifficulty
	}
	if to == currentLevel {
		// Clamped to a no-op. The window stays and keeps sliding, so
		// the pattern is still visible if the level later changes.
		e.mu.Unlock()
		return nil, nil
	}
	// A fired window is consumed; the next adjustment needs K fresh
	// responses.
	window := w
	delete(e.windows, sessionID)
	e.mu.Unlock()

	d := &Decision{
		SessionID:      sessionID,
		LearnerID:      learnerID,
		UnitID:         sig.UnitID,
		Reason:         reason,
		FromDifficulty: currentLevel,
		ToDifficulty:   to,
		Window:         window,
	}
	d.RecommendedUnitID = e.recommend(ctx, snap, learnerID, to, sig.UnitID)

	if err := e.audit.AppendAdaptationEvent(ctx, store.AdaptationEventData{
		SessionID:         sessionID,
		LearnerID:         learnerID,
		UnitID:            sig.UnitID,
		Reason:            reason,
		FromDifficulty:    currentLevel,
		ToDifficulty:      to,
		RecommendedUnitID: d.RecommendedUnitID,
	}); err != nil {
		e.log.Warn("adaptation audit failed", "session", sessionID, "err", err)
	}
	e.log.Info("difficulty adapted",
		"session", sessionID,
		"learner", learnerID,
		"reason", reason,
		"from", currentLevel,
		"to", to,
		"recommended", d.RecommendedUnitID)
	return d, nil
}

// recommend asks the collaborator for replacement content at the new
// level. Failure or timeout is not an error: the adjustment stands and
// the learner continues the current path.
func (e *Engine) recommend(ctx context.Context, snap *hierarchy.Snapshot, learnerID string, level int, currentUnitID string) string {
	if e.rec == nil {
		return ""
	}
	rctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	unitID, err := e.rec.Recommend(rctx, snap, learnerID, level, currentUnitID)
	if err != nil {
		e.log.Warn("recommendation lookup failed", "learner", learnerID, "level", level, "err", err)
		return ""
	}
	return unitID
}

// Forget drops the window state for an ended session.
func (e *Engine) Forget(sessionID string) {
	e.mu.Lock()
	delete(e.windows, sessionID)
	e.mu.Unlock()
}

func allStruggling(w []Signal) bool {
	for _, s := range w {
		if !s.struggling() {
			return false
		}
	}
	return true
}

func allFast(w []Signal) bool {
	for _, s := range w {
		if !s.fast() {
			return false
		}
	}
	return true
}
