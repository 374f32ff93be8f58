package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amrit/rehearse/internal/history"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved sessions as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openRecorder(cmd, newLogger())
		if err != nil {
			return err
		}
		defer closeStore()

		records, err := store.LoadAll(cmd.Context())
		if err != nil {
			return err
		}

		if student, _ := cmd.Flags().GetString("student"); student != "" {
			records = history.FilterByStudent(records, student)
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			out = f
			defer fmt.Fprintf(os.Stderr, "Wrote %d sessions to %s\n", len(records), path)
		}

		return history.WriteCSV(out, records)
	},
}

func init() {
	exportCmd.Flags().String("student", "", "Only export sessions for this student")
	exportCmd.Flags().StringP("out", "o", "", "Write CSV to this file instead of stdout")
}
