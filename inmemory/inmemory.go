package inmemory

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Searcher implements the guidex.Searcher interface over an immutable,
// in-memory catalogue. The catalogue is copied at construction and never
// written afterwards, so a Searcher is safe for concurrent use without locks.
type Searcher struct {
	catalogue []guidex.Guideline
	weights   Weights
	tracer    trace.Tracer
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWeights replaces the default weight table.
func WithWeights(w Weights) Option {
	return func(s *Searcher) {
		s.weights = w
	}
}

// WithTracer replaces the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Searcher) {
		s.tracer = t
	}
}

// New creates a searcher owning a copy of catalogue.
// The catalogue is expected to be validated by its loader; duplicate IDs are
// not detected here.
func New(catalogue []guidex.Guideline, opts ...Option) *Searcher {
	s := &Searcher{
		catalogue: guidex.CloneAll(catalogue),
		weights:   DefaultWeights(),
		tracer:    otel.Tracer("guidex-inmemory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the number of guidelines in the catalogue.
func (s *Searcher) Size() int {
	return len(s.catalogue)
}

// Catalogue returns a copy of the catalogue in load order.
func (s *Searcher) Catalogue() []guidex.Guideline {
	return guidex.CloneAll(s.catalogue)
}

// Rank returns the catalogue guidelines matching query, best first.
func (s *Searcher) Rank(query string) []guidex.Guideline {
	return rankWith(s.weights, query, s.catalogue)
}

// FindBySymptoms returns the guidelines with a symptom containing any target.
func (s *Searcher) FindBySymptoms(targets []string) []guidex.Guideline {
	return FindBySymptoms(targets, s.catalogue)
}

// FindByKeywords returns the guidelines with a keyword containing any target.
func (s *Searcher) FindByKeywords(targets []string) []guidex.Guideline {
	return FindByKeywords(targets, s.catalogue)
}

// Search implements the guidex.Searcher interface.
// Filters narrow the ranked matches; Limit and Offset select a window of them.
func (s *Searcher) Search(ctx context.Context, query string, opts ...guidex.SearchOption) (*guidex.Results, error) {
	startTime := time.Now()

	ctx, span := s.tracer.Start(ctx, "guidex.search",
		trace.WithAttributes(
			attribute.String("guidex.query", query),
			attribute.Int("guidex.catalogue_size", len(s.catalogue)),
		),
	)
	defer span.End()

	// Check context
	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "search canceled")
		return nil, errors.WithSecondaryError(guidex.ErrCanceled, ctx.Err())
	default:
	}

	cfg := guidex.NewSearchConfig(opts...)
	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid search options")
		return nil, err
	}
	for _, f := range cfg.Filters {
		if err := guidex.ValidateExpression(f); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid filter expression")
			return nil, err
		}
	}

	matches := scoreAll(s.weights, Normalize(query), s.catalogue)
	filtered := make([]guidex.Guideline, 0, len(matches))
	for _, m := range matches {
		if matchesFilters(m.guideline, cfg.Filters) {
			filtered = append(filtered, m.guideline)
		}
	}

	// Apply pagination
	total := len(filtered)
	start := cfg.Offset
	if start > total {
		start = total
	}
	end := total
	if cfg.Limit > 0 && cfg.Limit < total-start {
		end = start + cfg.Limit
	}

	results := &guidex.Results{
		Items: guidex.CloneAll(filtered[start:end]),
		Total: int64(total),
		Query: query,
		Took:  time.Since(startTime).Milliseconds(),
	}

	if end < total {
		nextOffset := end
		results.NextOffset = &nextOffset
	}

	span.SetAttributes(
		attribute.Int("guidex.total", total),
		attribute.Int("guidex.returned", len(results.Items)),
	)
	span.SetStatus(codes.Ok, "search completed")
	return results, nil
}
