package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/adaptic/internal/store"
)

// LoggingProvider records every model call in the audit log: provider,
// tokens, latency, outcome. A failed audit write never fails the call.
type LoggingProvider struct {
	inner Provider
	audit store.AuditRepo
	log   *slog.Logger
}

// WithLogging wraps a Provider with audit logging.
func WithLogging(p Provider, audit store.AuditRepo, log *slog.Logger) Provider {
	return &LoggingProvider{inner: p, audit: audit, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if auditErr := l.audit.AppendLLMRequest(ctx, data); auditErr != nil {
		l.log.Warn("llm request audit failed", "purpose", data.Purpose, "err", auditErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
