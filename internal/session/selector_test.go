package session

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/amrit/rehearse/internal/catalog"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// buildCatalog creates n questions per category with the given mode.
func buildCatalog(categories []string, perCategory int, mode catalog.ResponseMode) []catalog.Question {
	var qs []catalog.Question
	for _, cat := range categories {
		for i := 1; i <= perCategory; i++ {
			qs = append(qs, catalog.Question{
				ID:       fmt.Sprintf("%s%d", cat, i),
				Category: cat,
				Prompt:   fmt.Sprintf("question %s%d", cat, i),
				Mode:     mode,
			})
		}
	}
	return qs
}

func TestSelect_DisjointAcrossManySeeds(t *testing.T) {
	bank := buildCatalog([]string{"A", "B", "C", "D"}, 3, catalog.ModeEither)
	cfg := DefaultSelectorConfig()

	for seed := uint64(1); seed <= 50; seed++ {
		set := Select(bank, cfg, testRand(seed))

		ids := make(map[string]bool)
		for _, q := range set.Typed {
			ids[q.ID] = true
		}
		for _, q := range set.Timed {
			if ids[q.ID] {
				t.Fatalf("seed %d: id %s in both typed and timed", seed, q.ID)
			}
		}
	}
}

func TestSelect_DisjointWhenQuotasOverlapThinCatalog(t *testing.T) {
	// Only two "both"-mode questions in one category; typed and timed
	// quotas both want them.
	bank := buildCatalog([]string{"A"}, 2, catalog.ModeEither)
	cfg := SelectorConfig{
		TypedQuotas: Quotas{"A": 2},
		TimedQuotas: Quotas{"A": 2},
		TypedCount:  2,
		TimedCount:  2,
	}

	for seed := uint64(1); seed <= 20; seed++ {
		set := Select(bank, cfg, testRand(seed))
		if len(set.Typed)+len(set.Timed) > 2 {
			t.Fatalf("seed %d: drew %d+%d questions from a 2-question catalog",
				seed, len(set.Typed), len(set.Timed))
		}
		for _, tq := range set.Typed {
			for _, vq := range set.Timed {
				if tq.ID == vq.ID {
					t.Fatalf("seed %d: id %s duplicated", seed, tq.ID)
				}
			}
		}
	}
}

func TestSelect_ModeEligibility(t *testing.T) {
	bank := append(
		buildCatalog([]string{"A", "B"}, 2, catalog.ModeTyped),
		buildCatalog([]string{"C", "D"}, 2, catalog.ModeTimed)...,
	)
	cfg := DefaultSelectorConfig()
	set := Select(bank, cfg, testRand(7))

	for _, q := range set.Typed {
		if !q.TypedEligible() {
			t.Errorf("typed set contains timed-only question %s", q.ID)
		}
	}
	for _, q := range set.Timed {
		if !q.TimedEligible() {
			t.Errorf("timed set contains typed-only question %s", q.ID)
		}
	}
}

func TestSelect_EmptyCatalog(t *testing.T) {
	set := Select(nil, DefaultSelectorConfig(), testRand(1))
	if len(set.Typed) != 0 || len(set.Timed) != 0 {
		t.Fatalf("expected empty set, got %d typed / %d timed", len(set.Typed), len(set.Timed))
	}
}

func TestSelect_ShortfallAbsorbedSilently(t *testing.T) {
	// Category A has only one question but quota asks for two.
	bank := buildCatalog([]string{"A"}, 1, catalog.ModeTyped)
	cfg := SelectorConfig{
		TypedQuotas: Quotas{"A": 2, "B": 1},
		TypedCount:  3,
	}
	set := Select(bank, cfg, testRand(3))
	if len(set.Typed) != 1 {
		t.Fatalf("got %d typed, want 1 (shortfall absorbed)", len(set.Typed))
	}
}

func TestSelect_QuotaCoverageScenario(t *testing.T) {
	// 4 categories, 2 typed-eligible questions each, quotas {A:2,B:1,C:1,D:1},
	// typedCount=5: the draw is exactly 5 and covers every category.
	bank := buildCatalog([]string{"A", "B", "C", "D"}, 2, catalog.ModeTyped)
	cfg := SelectorConfig{
		TypedQuotas: Quotas{"A": 2, "B": 1, "C": 1, "D": 1},
		TypedCount:  5,
	}

	for seed := uint64(1); seed <= 25; seed++ {
		set := Select(bank, cfg, testRand(seed))
		if len(set.Typed) != 5 {
			t.Fatalf("seed %d: got %d typed, want 5", seed, len(set.Typed))
		}
		seen := make(map[string]int)
		for _, q := range set.Typed {
			seen[q.Category]++
		}
		for _, cat := range []string{"A", "B", "C", "D"} {
			if seen[cat] == 0 {
				t.Errorf("seed %d: category %s missing from draw %v", seed, cat, seen)
			}
		}
		if seen["A"] != 2 {
			t.Errorf("seed %d: category A drew %d, want quota of 2", seed, seen["A"])
		}
	}
}

func TestSelect_TruncatesToRequestedCount(t *testing.T) {
	bank := buildCatalog([]string{"A", "B", "C", "D"}, 5, catalog.ModeEither)
	cfg := SelectorConfig{
		TypedQuotas: Quotas{"A": 3, "B": 3, "C": 3, "D": 3},
		TypedCount:  5,
	}
	set := Select(bank, cfg, testRand(9))
	if len(set.Typed) != 5 {
		t.Fatalf("got %d typed, want truncation to 5", len(set.Typed))
	}
}
