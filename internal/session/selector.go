package session

import (
	"math/rand/v2"
	"sort"

	"github.com/amrit/rehearse/internal/catalog"
)

// Quotas maps a category code to the maximum number of questions drawn
// from it during selection.
type Quotas map[string]int

// SelectorConfig controls stratified selection for one session.
type SelectorConfig struct {
	TypedQuotas Quotas
	TimedQuotas Quotas
	TypedCount  int
	TimedCount  int
}

// DefaultSelectorConfig returns the standard session shape: five typed and
// five timed questions with per-category quotas guaranteeing coverage.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		TypedQuotas: Quotas{"A": 2, "B": 1, "C": 1, "D": 1},
		TimedQuotas: Quotas{"A": 1, "B": 2, "C": 1, "D": 1},
		TypedCount:  5,
		TimedCount:  5,
	}
}

// Select builds one session's question set from the catalog using
// stratified quota sampling: draw up to the quota per category without
// replacement, shuffle the combined draw, then truncate to the requested
// count. Quota shortfalls in thin categories are absorbed silently — the
// session is simply smaller. The typed and timed sequences are always
// disjoint by id, even when quotas overlap.
func Select(questions []catalog.Question, cfg SelectorConfig, rng *rand.Rand) Set {
	typedPool := groupByCategory(questions, catalog.Question.TypedEligible)
	timedPool := groupByCategory(questions, catalog.Question.TimedEligible)

	used := make(map[string]bool)

	typed := drawQuotas(typedPool, cfg.TypedQuotas, used, rng)
	timed := drawQuotas(timedPool, cfg.TimedQuotas, used, rng)

	shuffle(typed, rng)
	shuffle(timed, rng)

	return Set{
		Typed: truncate(typed, cfg.TypedCount),
		Timed: truncate(timed, cfg.TimedCount),
	}
}

func groupByCategory(questions []catalog.Question, eligible func(catalog.Question) bool) map[string][]catalog.Question {
	groups := make(map[string][]catalog.Question)
	for _, q := range questions {
		if eligible(q) {
			groups[q.Category] = append(groups[q.Category], q)
		}
	}
	return groups
}

// drawQuotas samples min(quota, available) questions per category without
// replacement, excluding ids already marked used. Categories are visited
// in sorted order so the draw depends only on the rng, not map iteration.
func drawQuotas(pool map[string][]catalog.Question, quotas Quotas, used map[string]bool, rng *rand.Rand) []catalog.Question {
	cats := make([]string, 0, len(quotas))
	for c := range quotas {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var selected []catalog.Question
	for _, cat := range cats {
		quota := quotas[cat]
		var available []catalog.Question
		for _, q := range pool[cat] {
			if !used[q.ID] {
				available = append(available, q)
			}
		}

		n := quota
		if n > len(available) {
			n = len(available)
		}

		shuffle(available, rng)
		for _, q := range available[:n] {
			selected = append(selected, q)
			used[q.ID] = true
		}
	}
	return selected
}

func shuffle(qs []catalog.Question, rng *rand.Rand) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}

func truncate(qs []catalog.Question, n int) []catalog.Question {
	if n < len(qs) {
		return qs[:n]
	}
	return qs
}
