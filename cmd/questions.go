package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/amrit/rehearse/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate and summarize the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveQuestionsPath(cmd)

		var bank []catalog.Question
		if path == "" {
			bank = catalog.DefaultQuestions()
			fmt.Println("Using the built-in question set.")
		} else {
			var err error
			bank, err = catalog.Load(path)
			if err != nil {
				return err
			}
			fmt.Printf("Catalog %s is valid.\n", path)
		}

		fmt.Printf("%d questions\n\n", len(bank))

		counts := catalog.Categories(bank)
		cats := make([]string, 0, len(counts))
		for c := range counts {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		names := make(map[string]string)
		totals := make(map[string]int)
		for _, q := range bank {
			if names[q.Category] == "" {
				names[q.Category] = q.CategoryName
			}
			totals[q.Category]++
		}

		for _, c := range cats {
			fmt.Printf("%s  %-28s  %d total (%d written-eligible, %d spoken-eligible)\n",
				c, names[c], totals[c], counts[c][0], counts[c][1])
		}

		return nil
	},
}
