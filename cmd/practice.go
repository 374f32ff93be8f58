package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amrit/rehearse/internal/app"
	"github.com/amrit/rehearse/internal/catalog"
	"github.com/amrit/rehearse/internal/feedback"
	"github.com/amrit/rehearse/internal/history"
	"github.com/amrit/rehearse/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice interview session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func runPractice(cmd *cobra.Command) error {
	logger := newLogger()

	bank := catalog.LoadOrDefault(resolveQuestionsPath(cmd), logger)

	recorder, closeStore, err := openRecorder(cmd, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := app.Options{
		Catalog:       bank,
		Selector:      session.DefaultSelectorConfig(),
		Recorder:      recorder,
		TimedDuration: app.DefaultTimedDuration,
	}

	// Feedback is strictly optional: no credentials, no coach.
	if cfg, ok := feedback.DiscoverConfig(); ok {
		provider, err := feedback.NewProvider(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "AI feedback not configured:", err)
			fmt.Fprintln(os.Stderr, "The session will run without feedback.")
		} else {
			opts.Coach = feedback.NewCoach(provider, cfg.Timeout)
		}
	}

	return app.Run(opts)
}

// sessionStore is what the CLI needs from a storage backend.
type sessionStore interface {
	session.Recorder
	LoadAll(ctx context.Context) ([]history.SessionRecord, error)
}

// openRecorder builds the storage backend selected by --store. The returned
// func releases any underlying handle.
func openRecorder(cmd *cobra.Command, logger *slog.Logger) (sessionStore, func(), error) {
	dataDir := resolveDataDir(cmd)
	backend, _ := cmd.Flags().GetString("store")

	switch backend {
	case "file", "":
		fs, err := history.NewFileStore(dataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
		st, err := history.NewSQLiteStore(sqlitePath(dataDir), logger)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q (want file or sqlite)", backend)
	}
}

func init() {
	practiceCmd.SetContext(context.Background())
}
