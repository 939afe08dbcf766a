package inmemory

import (
	"strings"
	"unicode/utf8"

	"github.com/letmevibethatforyou/guidex"
)

// MinQueryLength is the shortest normalized query, in characters, that is
// scored at all. Shorter queries would match nearly every record.
const MinQueryLength = 2

// Weights is the per-field weight table of the relevance score.
type Weights struct {
	// Name is awarded when the guideline name contains the query.
	Name int
	// SymptomSubstring is awarded per symptom entry containing the query.
	SymptomSubstring int
	// SymptomToken is awarded per symptom entry that only matches token-wise.
	SymptomToken int
	// KeywordSubstring is awarded per keyword entry containing the query.
	KeywordSubstring int
	// KeywordToken is awarded per keyword entry that only matches token-wise.
	KeywordToken int
	// Category is awarded when the category contains the query.
	Category int
}

// DefaultWeights returns the standard weight table. Name and symptom matches
// dominate, keywords are secondary and category only breaks ties.
func DefaultWeights() Weights {
	return Weights{
		Name:             10,
		SymptomSubstring: 8,
		SymptomToken:     5,
		KeywordSubstring: 6,
		KeywordToken:     3,
		Category:         2,
	}
}

// Normalize trims surrounding whitespace and lower-cases the query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// searchable reports whether a normalized query is long enough to score.
func searchable(query string) bool {
	return utf8.RuneCountInString(query) >= MinQueryLength
}

// Score computes the relevance of a guideline for an already normalized query
// using the default weights.
func Score(query string, g guidex.Guideline) int {
	return scoreWith(DefaultWeights(), query, g)
}

func scoreWith(w Weights, query string, g guidex.Guideline) int {
	if query == "" {
		return 0
	}

	score := fieldMatchScore(query, g.Name, w.Name, 0)
	for _, symptom := range g.Symptoms {
		score += fieldMatchScore(query, symptom, w.SymptomSubstring, w.SymptomToken)
	}
	for _, keyword := range g.Keywords {
		score += fieldMatchScore(query, keyword, w.KeywordSubstring, w.KeywordToken)
	}
	score += fieldMatchScore(query, g.Category, w.Category, 0)

	return score
}

// fieldMatchScore applies the two-tier test to a single field value.
// The token tier only runs when the substring tier failed, so one value never
// earns both weights.
func fieldMatchScore(query, value string, substringWeight, tokenWeight int) int {
	value = strings.ToLower(value)
	if strings.Contains(value, query) {
		return substringWeight
	}
	if tokenWeight > 0 && tokenMatch(query, value) {
		return tokenWeight
	}
	return 0
}

// tokenMatch reports whether every whitespace-delimited token of the query is
// contained in some token of the value. For a single-token query this is the
// plain "some token contains the query" test; for several tokens it accepts
// reordered or partially typed phrases such as "abd dor".
func tokenMatch(query, value string) bool {
	queryTokens := strings.Fields(query)
	valueTokens := strings.Fields(value)
	if len(queryTokens) == 0 || len(valueTokens) == 0 {
		return false
	}

	for _, qt := range queryTokens {
		found := false
		for _, vt := range valueTokens {
			if strings.Contains(vt, qt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
