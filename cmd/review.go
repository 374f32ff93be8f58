package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/rehearse/internal/history"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show saved sessions for the reviewer",
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

		summary := history.Summarize(records)
		fmt.Printf("Sessions: %d   Students: %d   Written answers: %d   Spoken answers: %d\n\n",
			summary.Sessions, summary.Students, summary.TypedResponses, summary.TimedResponses)

		if len(records) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %-20s  %d written, %d spoken\n",
				rec.SessionTimestamp.Format("2006-01-02 15:04"),
				rec.StudentName,
				len(rec.TypedResponses), len(rec.VideoResponses))
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Println()
			for _, rec := range records {
				fmt.Printf("── %s (%s)\n", rec.StudentName, rec.SessionID)
				for _, t := range rec.TypedResponses {
					fmt.Printf("   Q: %s\n   A: %s (%d words)\n", t.Question, t.Response, t.WordCount)
					if t.AIFeedback != "" {
						fmt.Printf("   Feedback: %s\n", t.AIFeedback)
					}
				}
				for _, v := range rec.VideoResponses {
					fmt.Printf("   Q: %s\n   Notes: %s\n", v.Question, v.Notes)
				}
				fmt.Println()
			}
		}

		return nil
	},
}

func init() {
	reviewCmd.Flags().String("student", "", "Only show sessions for this student")
	reviewCmd.Flags().BoolP("verbose", "v", false, "Print every response in full")
}
