package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptic",
	Short: "Learning-progress and adaptive-difficulty engine",
	Long: "Adaptic ingests learner interaction events, tracks section/lesson/course " +
		"completion, derives mastery decisions from assessment evidence and adapts " +
		"content difficulty within a session.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; explicit env vars still apply.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIC_DB env var)")
	rootCmd.PersistentFlags().String("hierarchy", "", "Path to the unit hierarchy JSON file (overrides ADAPTIC_HIERARCHY)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPTIC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.SQLStore, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// loadSnapshot builds the hierarchy snapshot from the configured file.
func loadSnapshot(cmd *cobra.Command) (*hierarchy.Snapshot, error) {
	path, _ := cmd.Flags().GetString("hierarchy")
	if path == "" {
		path = os.Getenv("ADAPTIC_HIERARCHY")
	}
	if path == "" {
		return nil, fmt.Errorf("no hierarchy file configured: set --hierarchy or ADAPTIC_HIERARCHY")
	}
	units, err := hierarchy.FileProvider{Path: path}.Units(cmd.Context())
	if err != nil {
		return nil, err
	}
	return hierarchy.Build(units)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
