package catalog

import "fmt"

// ResponseMode describes how a question may be answered.
type ResponseMode string

const (
	// ModeTyped questions are answered with a written response.
	ModeTyped ResponseMode = "typed"
	// ModeTimed questions are answered out loud during a timed window.
	// Serialized as "video" for compatibility with existing catalogs.
	ModeTimed ResponseMode = "video"
	// ModeEither questions are eligible for both phases.
	ModeEither ResponseMode = "both"
)

// Question is one immutable catalog entry.
type Question struct {
	ID           string       `json:"id"`
	Category     string       `json:"category"`
	CategoryName string       `json:"category_name"`
	Prompt       string       `json:"question"`
	Mode         ResponseMode `json:"type"`
	Tips         string       `json:"tips,omitempty"`
}

// TypedEligible reports whether the question may appear in the typed phase.
func (q Question) TypedEligible() bool {
	return q.Mode == ModeTyped || q.Mode == ModeEither
}

// TimedEligible reports whether the question may appear in the timed phase.
func (q Question) TimedEligible() bool {
	return q.Mode == ModeTimed || q.Mode == ModeEither
}

// Validate checks catalog-wide invariants: every entry has an id, prompt and
// a known mode, and ids are unique across the catalog.
func Validate(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("question %d: missing id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Prompt == "" {
			return fmt.Errorf("question %q: missing prompt", q.ID)
		}
		switch q.Mode {
		case ModeTyped, ModeTimed, ModeEither:
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Mode)
		}
	}
	return nil
}

// Categories returns the distinct category codes present, with counts of
// typed-eligible and timed-eligible questions per category.
func Categories(questions []Question) map[string][2]int {
	out := make(map[string][2]int)
	for _, q := range questions {
		c := out[q.Category]
		if q.TypedEligible() {
			c[0]++
		}
		if q.TimedEligible() {
			c[1]++
		}
		out[q.Category] = c
	}
	return out
}
