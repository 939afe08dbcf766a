package guidex

import "github.com/cockroachdb/errors"

// SearchOption represents a search configuration option.
type SearchOption interface {
	Apply(*SearchConfig)
}

// SearchConfig holds all search configuration parameters.
type SearchConfig struct {
	// Limit specifies the maximum number of results to return.
	// Zero returns every match.
	Limit int

	// Offset specifies the number of results to skip for pagination.
	Offset int

	// Filters contains filter expressions to apply.
	Filters []Expression
}

// NewSearchConfig applies opts in order to an empty configuration.
func NewSearchConfig(opts ...SearchOption) *SearchConfig {
	cfg := &SearchConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(cfg)
		}
	}
	return cfg
}

// Validate rejects windows that cannot be applied.
func (c *SearchConfig) Validate() error {
	if c.Limit < 0 {
		return errors.Wrapf(ErrInvalidOption, "limit must not be negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return errors.Wrapf(ErrInvalidOption, "offset must not be negative, got %d", c.Offset)
	}
	return nil
}

// optionFunc is a function that implements SearchOption.
type optionFunc func(*SearchConfig)

// Apply implements the SearchOption interface for optionFunc.
func (f optionFunc) Apply(cfg *SearchConfig) {
	f(cfg)
}

// WithLimit sets the maximum number of results to return.
func WithLimit(n int) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.Limit = n
	})
}

// WithOffset sets the number of results to skip for pagination.
func WithOffset(n int) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.Offset = n
	})
}
