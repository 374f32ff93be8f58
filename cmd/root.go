package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rehearse",
	Short: "Interview practice for students",
	Long: "Rehearse — terminal app that takes a student through a timed practice\n" +
		"interview: written answers first, then spoken answers against the clock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	// A .env next to the binary is the simplest way for a coach to configure
	// an API key on a shared machine. Absence is not an error.
	_ = godotenv.Load()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Directory for saved sessions (default ./responses, or REHEARSE_DATA_DIR)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a question catalog JSON file (default built-in set, or REHEARSE_QUESTIONS)")
	rootCmd.PersistentFlags().String("store", "file", "Session storage backend: file or sqlite")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. REHEARSE_LOG=debug turns on debug
// output; the default stays quiet so log lines don't bleed into the TUI.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("REHEARSE_LOG") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveDataDir returns the session directory using --data (highest
// priority), then REHEARSE_DATA_DIR, then ./responses.
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	if p := os.Getenv("REHEARSE_DATA_DIR"); p != "" {
		return p
	}
	return "responses"
}

// resolveQuestionsPath returns the catalog path, or "" for the built-in set.
func resolveQuestionsPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p
	}
	return os.Getenv("REHEARSE_QUESTIONS")
}

// sqlitePath is where the sqlite backend keeps its database.
func sqlitePath(dataDir string) string {
	return filepath.Join(dataDir, "sessions.db")
}
