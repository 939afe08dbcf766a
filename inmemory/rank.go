package inmemory

import (
	"sort"
	"strings"

	"github.com/letmevibethatforyou/guidex"
)

type scoredGuideline struct {
	guideline guidex.Guideline
	score     int
}

// Rank scores every guideline of the catalogue against query and returns the
// matches ordered by descending score. Equal scores keep catalogue order.
// Queries shorter than MinQueryLength after normalization return nothing.
func Rank(query string, catalogue []guidex.Guideline) []guidex.Guideline {
	return rankWith(DefaultWeights(), query, catalogue)
}

func rankWith(w Weights, query string, catalogue []guidex.Guideline) []guidex.Guideline {
	matches := scoreAll(w, Normalize(query), catalogue)
	out := make([]guidex.Guideline, len(matches))
	for i, m := range matches {
		out[i] = m.guideline.Clone()
	}
	return out
}

// scoreAll expects a normalized query.
func scoreAll(w Weights, query string, catalogue []guidex.Guideline) []scoredGuideline {
	if !searchable(query) {
		return nil
	}

	var matches []scoredGuideline
	for _, g := range catalogue {
		if score := scoreWith(w, query, g); score > 0 {
			matches = append(matches, scoredGuideline{guideline: g, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	return matches
}

// FindBySymptoms returns, in catalogue order, every guideline with at least
// one symptom containing at least one of the targets, ignoring case.
// Blank targets are ignored.
func FindBySymptoms(targets []string, catalogue []guidex.Guideline) []guidex.Guideline {
	return findBy(targets, catalogue, func(g guidex.Guideline) []string { return g.Symptoms })
}

// FindByKeywords is FindBySymptoms over the keyword lists.
func FindByKeywords(targets []string, catalogue []guidex.Guideline) []guidex.Guideline {
	return findBy(targets, catalogue, func(g guidex.Guideline) []string { return g.Keywords })
}

func findBy(targets []string, catalogue []guidex.Guideline, field func(guidex.Guideline) []string) []guidex.Guideline {
	needles := normalizeTargets(targets)
	if len(needles) == 0 {
		return []guidex.Guideline{}
	}

	out := make([]guidex.Guideline, 0)
	for _, g := range catalogue {
		if anyEntryContains(field(g), needles) {
			out = append(out, g.Clone())
		}
	}
	return out
}

func normalizeTargets(targets []string) []string {
	seen := make(map[string]struct{}, len(targets))
	needles := make([]string, 0, len(targets))
	for _, t := range targets {
		t = Normalize(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		needles = append(needles, t)
	}
	return needles
}

func anyEntryContains(entries, needles []string) bool {
	for _, entry := range entries {
		entry = strings.ToLower(entry)
		for _, n := range needles {
			if strings.Contains(entry, n) {
				return true
			}
		}
	}
	return false
}
