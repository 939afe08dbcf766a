package guidex

import "github.com/cockroachdb/errors"

// Expression represents a composable filter expression.
// All Expressions are SearchOptions, but not all SearchOptions are Expressions.
// Filters narrow the ranked matches and never change their order.
type Expression interface {
	SearchOption
	// expr is a marker method to distinguish expressions from other options.
	expr()
}

// baseExpr provides the expr marker method for all expression types.
type baseExpr struct{}

func (baseExpr) expr() {}

// AndExpr represents an AND combination of expressions.
type AndExpr struct {
	baseExpr
	// Exprs contains the expressions to combine with AND logic.
	Exprs []Expression
}

// Apply implements the SearchOption interface for AndExpr.
func (a AndExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, a)
}

// And creates an AND expression combining multiple expressions.
func And(exprs ...Expression) Expression {
	return AndExpr{Exprs: exprs}
}

// OrExpr represents an OR combination of expressions.
type OrExpr struct {
	baseExpr
	// Exprs contains the expressions to combine with OR logic.
	Exprs []Expression
}

// Apply implements the SearchOption interface for OrExpr.
func (o OrExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, o)
}

// Or creates an OR expression combining multiple expressions.
func Or(exprs ...Expression) Expression {
	return OrExpr{Exprs: exprs}
}

// NotExpr represents a NOT negation of an expression.
type NotExpr struct {
	baseExpr
	// Inner is the expression to negate.
	Inner Expression
}

// Apply implements the SearchOption interface for NotExpr.
func (n NotExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, n)
}

// Not creates a NOT expression negating the given expression.
func Not(expr Expression) Expression {
	return NotExpr{Inner: expr}
}

// EqExpr represents a case-insensitive equality test.
// On list fields it holds when any entry is equal to Value.
type EqExpr struct {
	baseExpr
	// Field is the name of the field to compare.
	Field string
	// Value is the value to compare against.
	Value string
}

// Apply implements the SearchOption interface for EqExpr.
func (e EqExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, e)
}

// Eq creates an equality comparison expression.
func Eq(field, value string) Expression {
	return EqExpr{Field: field, Value: value}
}

// NeExpr represents the negation of EqExpr.
type NeExpr struct {
	baseExpr
	// Field is the name of the field to compare.
	Field string
	// Value is the value to compare against.
	Value string
}

// Apply implements the SearchOption interface for NeExpr.
func (n NeExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, n)
}

// Ne creates a not-equal comparison expression.
func Ne(field, value string) Expression {
	return NeExpr{Field: field, Value: value}
}

// ExistsExpr holds when the field is non-empty.
type ExistsExpr struct {
	baseExpr
	// Field is the name of the field to check.
	Field string
}

// Apply implements the SearchOption interface for ExistsExpr.
func (e ExistsExpr) Apply(cfg *SearchConfig) {
	cfg.Filters = append(cfg.Filters, e)
}

// Exists creates a field existence check expression.
func Exists(field string) Expression {
	return ExistsExpr{Field: field}
}

// ValidateExpression walks expr and rejects unknown fields and nil operands.
func ValidateExpression(expr Expression) error {
	switch e := expr.(type) {
	case nil:
		return errors.Wrap(ErrInvalidExpression, "nil expression")
	case AndExpr:
		return validateAll(e.Exprs)
	case OrExpr:
		return validateAll(e.Exprs)
	case NotExpr:
		return ValidateExpression(e.Inner)
	case EqExpr:
		return validateField(e.Field)
	case NeExpr:
		return validateField(e.Field)
	case ExistsExpr:
		return validateField(e.Field)
	default:
		return errors.Wrapf(ErrInvalidExpression, "unsupported expression %T", expr)
	}
}

func validateAll(exprs []Expression) error {
	for _, e := range exprs {
		if err := ValidateExpression(e); err != nil {
			return err
		}
	}
	return nil
}

func validateField(field string) error {
	switch field {
	case FieldID, FieldName, FieldCategory, FieldSymptoms, FieldKeywords:
		return nil
	default:
		return errors.Wrapf(ErrInvalidExpression, "unknown field %q", field)
	}
}
