package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Janitor runs the engine's periodic maintenance: reaping idle sessions
// and pruning old committed-event records.
type Janitor struct {
	scheduler *gocron.Scheduler
	engine    *Engine
	retention time.Duration
	log       *slog.Logger
}

// NewJanitor creates a Janitor for the engine. retention bounds how
// long commit records survive before pruning.
func NewJanitor(e *Engine, retention time.Duration, log *slog.Logger) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		engine:    e,
		retention: retention,
		log:       log,
	}
}

// Start schedules the jobs and runs the scheduler in the background.
func (j *Janitor) Start() {
	j.scheduler.Every(1).Minute().Do(j.reapSessions)
	j.scheduler.Every(1).Hour().Do(j.pruneCommits)
	j.scheduler.StartAsync()
}

// Stop halts the scheduler. A running job finishes first.
func (j *Janitor) Stop() {
	j.scheduler.Stop()
}

func (j *Janitor) reapSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := j.engine.ReapIdleSessions(ctx)
	if err != nil {
		j.log.Warn("idle session reap failed", "err", err)
		return
	}
	if n > 0 {
		j.log.Info("idle sessions reaped", "count", n)
	}
}

func (j *Janitor) pruneCommits() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.engine.PruneCommits(ctx, time.Now().Add(-j.retention))
	if err != nil {
		j.log.Warn("commit record prune failed", "err", err)
		return
	}
	if n > 0 {
		j.log.Info("commit records pruned", "count", n)
	}
}
