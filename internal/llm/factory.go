package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/adaptic/internal/store"
)

// NewProvider builds the configured provider wrapped with retry and
// audit logging: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, audit store.AuditRepo, log *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, audit, log), cfg.Retry), nil
}
