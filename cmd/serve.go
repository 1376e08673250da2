package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptic/internal/adaptation"
	"github.com/abhisek/adaptic/internal/engine"
	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/llm"
	"github.com/abhisek/adaptic/internal/recommend"
	"github.com/abhisek/adaptic/internal/server"
	"github.com/abhisek/adaptic/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the engine as an HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command) error {
	log := newLogger(cmd)
	cfg := engine.ConfigFromEnv()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	holder := hierarchy.NewHolder(snap)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := buildRecommender(ctx, cfg.LLM, st, log)
	eng := engine.New(st, holder, rec, log, cfg.Options()...)
	defer eng.Close()

	janitor := engine.NewJanitor(eng, cfg.CommitRetention, log)
	janitor.Start()
	defer janitor.Stop()

	srv := server.NewServer(mustFlagString(cmd, "addr"), &server.Handler{Engine: eng, Log: log})
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRecommender wires the model-backed recommender when an LLM is
// configured, falling back to the deterministic hierarchy walk.
func buildRecommender(ctx context.Context, cfg llm.Config, st *store.SQLStore, log *slog.Logger) adaptation.Recommender {
	static := recommend.NewStatic(st)
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			log.Info("no LLM configured, using static recommender")
			return static
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(ctx, cfg, st, log)
	if err != nil {
		log.Warn("LLM provider init failed, using static recommender", "err", err)
		return static
	}
	log.Info("recommendation model configured", "provider", cfg.Provider)
	return recommend.NewModel(provider, static, log)
}

func mustFlagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
