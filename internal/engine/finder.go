// Package engine wires the query parser, the exact matcher and the fallback
// chain into one entry point for callers that hold an inventory snapshot.
package engine

import (
	"github.com/vendedor-ai/carmatch/internal/fallback"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/matcher"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/query"
	"github.com/vendedor-ai/carmatch/internal/scoring"
)

// Finder runs searches over inventory snapshots supplied by the caller.
// It holds only immutable collaborators and is safe for concurrent use.
type Finder struct {
	catalog  *knowledge.Catalog
	parser   *query.Parser
	matcher  *matcher.Matcher
	fallback *fallback.Engine
}

// New creates a finder with the default fallback configuration.
func New() *Finder {
	return NewWithConfig(fallback.DefaultConfig())
}

// NewWithConfig creates a finder with custom fallback bounds. Separate
// finders with different configs do not interfere.
func NewWithConfig(cfg fallback.Config) *Finder {
	catalog := knowledge.Default()
	scorer := scoring.New(catalog)
	return &Finder{
		catalog:  catalog,
		parser:   query.New(catalog),
		matcher:  matcher.New(catalog),
		fallback: fallback.NewWithConfig(catalog, scorer, cfg),
	}
}

// Parse exposes the query parser for callers that want the filters alone.
func (f *Finder) Parse(queryText string) model.ExtractedFilters {
	return f.parser.Parse(queryText)
}

// Search parses the query and runs the exact matcher over the snapshot.
func (f *Finder) Search(queryText string, inventory []model.Vehicle) (model.ExtractedFilters, model.ExactSearchResult) {
	filters := f.parser.Parse(queryText)
	return filters, f.matcher.Search(filters, inventory)
}

// Alternatives runs the fallback broadening chain directly, without an
// exact-match pass. A nil year skips the year-alternative tier; a
// non-positive referencePrice is estimated from the model's typical range.
func (f *Finder) Alternatives(requestedModel string, requestedYear *int, inventory []model.Vehicle, referencePrice float64) model.FallbackResult {
	return f.fallback.FindAlternatives(requestedModel, requestedYear, inventory, referencePrice)
}

// SearchWithFallback runs the exact matcher and, when it comes back
// unavailable, follows up with the fallback chain for the parsed model.
func (f *Finder) SearchWithFallback(queryText string, inventory []model.Vehicle, referencePrice float64) (model.ExactSearchResult, *model.FallbackResult) {
	filters, exact := f.Search(queryText, inventory)
	if exact.Type != model.MatchUnavailable || !filters.HasModel() {
		return exact, nil
	}

	result := f.fallback.FindAlternatives(*filters.Model, anchorYear(filters), inventory, referencePrice)
	return exact, &result
}

// anchorYear picks the year the fallback chain measures distance from: the
// parsed year, or the midpoint when the query carried a range.
func anchorYear(filters model.ExtractedFilters) *int {
	if filters.Year != nil {
		return filters.Year
	}
	if filters.YearRange != nil {
		mid := (filters.YearRange.Min + filters.YearRange.Max) / 2
		return &mid
	}
	return nil
}
