// Package fallback implements the ordered broadening chain used when the
// requested vehicle is not in stock: year alternatives, then same brand and
// category, then same category, then price range alone. Strategies are tried
// strictly in order and the first one to yield a candidate wins; later
// strategies are never consulted, a predictability trade-off made on purpose.
package fallback

import (
	"fmt"
	"time"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/matcher"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/scoring"
)

// Config bounds a fallback search. Immutable per engine instance; separate
// engines with different configs do not interfere.
type Config struct {
	MaxResults            int
	PriceTolerancePercent float64
	MaxYearDistance       int
}

// DefaultConfig returns the standard fallback bounds.
func DefaultConfig() Config {
	return Config{
		MaxResults:            5,
		PriceTolerancePercent: 20,
		MaxYearDistance:       5,
	}
}

// Engine runs the broadening chain. Safe for concurrent use: all state is
// written at construction.
type Engine struct {
	catalog *knowledge.Catalog
	scorer  *scoring.Scorer
	config  Config
}

// New creates a fallback engine with the default configuration.
func New(catalog *knowledge.Catalog, scorer *scoring.Scorer) *Engine {
	return NewWithConfig(catalog, scorer, DefaultConfig())
}

// NewWithConfig creates a fallback engine with custom bounds.
func NewWithConfig(catalog *knowledge.Catalog, scorer *scoring.Scorer, config Config) *Engine {
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultConfig().MaxResults
	}
	return &Engine{catalog: catalog, scorer: scorer, config: config}
}

// request carries the resolved search parameters shared by every strategy.
type request struct {
	model          string
	year           *int
	referencePrice float64
	category       string
}

// outcome is what a single strategy produces.
type outcome struct {
	matches    []model.VehicleMatch
	years      []int
	message    string
	considered int
}

// FindAlternatives runs the broadening chain for the requested model and
// optional year. A non-positive referencePrice is replaced by the midpoint
// of the model's typical price range.
func (e *Engine) FindAlternatives(requestedModel string, requestedYear *int, inventory []model.Vehicle, referencePrice float64) model.FallbackResult {
	start := time.Now()

	result := model.FallbackResult{
		Type:           model.FallbackNoResults,
		RequestedModel: requestedModel,
		RequestedYear:  copyYear(requestedYear),
		Matches:        []model.VehicleMatch{},
	}

	available := availableOnly(inventory)
	if common.NormalizeKey(requestedModel) == "" || len(available) == 0 {
		result.Message = fmt.Sprintf("Não encontrei alternativas para %s no momento.", requestedModel)
		result.Metadata = model.FallbackMetadata{
			StrategyUsed: model.FallbackNoResults,
			Elapsed:      time.Since(start),
		}
		return result
	}

	if referencePrice <= 0 {
		referencePrice = e.catalog.TypicalPriceRange(requestedModel).Midpoint()
	}

	req := request{
		model:          requestedModel,
		year:           requestedYear,
		referencePrice: referencePrice,
		category:       e.catalog.CategoryOf(requestedModel),
	}

	strategies := []struct {
		run  func(request, []model.Vehicle) outcome
		kind model.FallbackType
	}{
		{e.yearAlternative, model.FallbackYearAlternative},
		{e.sameBrand, model.FallbackSameBrand},
		{e.sameCategory, model.FallbackSameCategory},
		{e.priceRange, model.FallbackPriceRange},
	}

	for _, s := range strategies {
		out := s.run(req, available)
		if len(out.matches) == 0 {
			continue
		}
		result.Type = s.kind
		result.Message = out.message
		result.Matches = truncate(out.matches, e.config.MaxResults)
		result.AvailableYears = out.years
		result.Metadata = model.FallbackMetadata{
			StrategyUsed:         s.kind,
			CandidatesConsidered: out.considered,
			Elapsed:              time.Since(start),
		}
		return result
	}

	result.Message = fmt.Sprintf("Não encontrei alternativas para %s no momento.", requestedModel)
	result.Metadata = model.FallbackMetadata{
		StrategyUsed: model.FallbackNoResults,
		Elapsed:      time.Since(start),
	}
	return result
}

func copyYear(year *int) *int {
	if year == nil {
		return nil
	}
	y := *year
	return &y
}

func truncate(matches []model.VehicleMatch, limit int) []model.VehicleMatch {
	if len(matches) <= limit {
		return matches
	}
	return matches[:limit]
}

func availableOnly(inventory []model.Vehicle) []model.Vehicle {
	out := make([]model.Vehicle, 0, len(inventory))
	for _, v := range inventory {
		if v.Available {
			out = append(out, v)
		}
	}
	return out
}

func modelsDiffer(requested, vehicleModel string) bool {
	return !matcher.ModelsMatch(requested, vehicleModel)
}
