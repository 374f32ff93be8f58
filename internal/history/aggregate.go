package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// Summary holds reviewer-facing aggregate numbers over a set of records.
type Summary struct {
	Sessions       int
	Students       int
	TypedResponses int
	TimedResponses int
}

// Summarize computes aggregate counts over the given records.
func Summarize(records []SessionRecord) Summary {
	names := make(map[string]struct{})
	var s Summary
	for _, rec := range records {
		s.Sessions++
		names[rec.StudentName] = struct{}{}
		s.TypedResponses += len(rec.TypedResponses)
		s.TimedResponses += len(rec.VideoResponses)
	}
	s.Students = len(names)
	return s
}

// Students returns the distinct student names in the records, sorted.
func Students(records []SessionRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, rec := range records {
		if _, ok := seen[rec.StudentName]; ok {
			continue
		}
		seen[rec.StudentName] = struct{}{}
		names = append(names, rec.StudentName)
	}
	sort.Strings(names)
	return names
}

// FilterByStudent returns only the records belonging to the named student.
func FilterByStudent(records []SessionRecord, name string) []SessionRecord {
	var out []SessionRecord
	for _, rec := range records {
		if rec.StudentName == name {
			out = append(out, rec)
		}
	}
	return out
}

// csvHeader is the column layout reviewers import into their tracking sheets.
var csvHeader = []string{"Student", "Date", "Type", "Question", "Response", "Feedback"}

// WriteCSV flattens the records into one row per response. Timed reflections
// go in the Response column with an empty Feedback cell.
func WriteCSV(w io.Writer, records []SessionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		date := rec.SessionTimestamp.Format("2006-01-02 15:04")
		for _, t := range rec.TypedResponses {
			row := []string{rec.StudentName, date, "Typed", t.Question, t.Response, t.AIFeedback}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
		for _, v := range rec.VideoResponses {
			row := []string{rec.StudentName, date, "Video", v.Question, v.Notes, ""}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
