package inmemory

import (
	"strings"

	"github.com/letmevibethatforyou/guidex"
)

// matchesFilters checks if a guideline matches all the filter expressions.
func matchesFilters(g guidex.Guideline, filters []guidex.Expression) bool {
	for _, filter := range filters {
		if !evaluateExpression(g, filter) {
			return false
		}
	}
	return true
}

// evaluateExpression evaluates a single expression against a guideline.
// Expressions are validated before evaluation, so unknown types do not filter.
func evaluateExpression(g guidex.Guideline, expr guidex.Expression) bool {
	switch e := expr.(type) {
	case guidex.AndExpr:
		for _, inner := range e.Exprs {
			if !evaluateExpression(g, inner) {
				return false
			}
		}
		return true
	case guidex.OrExpr:
		for _, inner := range e.Exprs {
			if evaluateExpression(g, inner) {
				return true
			}
		}
		return false
	case guidex.NotExpr:
		return !evaluateExpression(g, e.Inner)
	case guidex.EqExpr:
		return fieldEquals(g, e.Field, e.Value)
	case guidex.NeExpr:
		return !fieldEquals(g, e.Field, e.Value)
	case guidex.ExistsExpr:
		return len(fieldValues(g, e.Field)) > 0
	default:
		return true
	}
}

// fieldEquals compares case-insensitively; list fields match on any entry.
func fieldEquals(g guidex.Guideline, field, value string) bool {
	for _, v := range fieldValues(g, field) {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// fieldValues returns the non-empty values stored under field.
func fieldValues(g guidex.Guideline, field string) []string {
	var values []string
	switch field {
	case guidex.FieldID:
		values = []string{g.ID}
	case guidex.FieldName:
		values = []string{g.Name}
	case guidex.FieldCategory:
		values = []string{g.Category}
	case guidex.FieldSymptoms:
		values = g.Symptoms
	case guidex.FieldKeywords:
		values = g.Keywords
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
