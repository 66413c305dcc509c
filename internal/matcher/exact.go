// Package matcher implements the exact-match search: model plus year against
// an inventory snapshot, with year-proximity alternatives and similar-model
// suggestions when nothing matches outright.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/model"
)

// Suggestion tier thresholds.
const (
	suggestionPriceTolerance = 30.0 // percent around the reference price
	suggestionYearWindow     = 3    // years around the requested year

	suggestionBodyPoints  = 40
	suggestionPricePoints = 30
	suggestionYearPoints  = 30
)

// Matcher performs exact-match searches over inventory snapshots. Stateless
// apart from the immutable catalog; safe for concurrent use.
type Matcher struct {
	catalog *knowledge.Catalog
}

// New creates a matcher backed by the given catalog.
func New(catalog *knowledge.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Search looks for vehicles matching the extracted filters. The reference
// price for the suggestion tier is estimated from the model's typical price
// range; use SearchWithReference to supply one.
func (m *Matcher) Search(filters model.ExtractedFilters, inventory []model.Vehicle) model.ExactSearchResult {
	return m.SearchWithReference(filters, inventory, 0)
}

// SearchWithReference is Search with an explicit reference price for the
// suggestion tier. A non-positive referencePrice falls back to the midpoint
// of the requested model's typical price range.
func (m *Matcher) SearchWithReference(filters model.ExtractedFilters, inventory []model.Vehicle, referencePrice float64) model.ExactSearchResult {
	if !filters.HasModel() || !filters.HasYear() {
		return model.ExactSearchResult{
			Type:    model.MatchUnavailable,
			Message: "Não consegui identificar o modelo e o ano desejados. Pode me dizer qual veículo você procura?",
			Matches: []model.VehicleMatch{},
		}
	}

	requestedModel := *filters.Model
	available := availableOnly(inventory)

	if exact := m.exactTier(filters, available); len(exact) > 0 {
		return model.ExactSearchResult{
			Type:    model.MatchExact,
			Message: fmt.Sprintf("Encontrei %d unidade(s) de %s %s em estoque.", len(exact), requestedModel, yearLabel(filters)),
			Matches: exact,
		}
	}

	if alternatives, years := m.yearAlternativeTier(filters, available); len(alternatives) > 0 {
		return model.ExactSearchResult{
			Type: model.MatchYearAlternatives,
			Message: fmt.Sprintf("Não temos %s %s, mas temos o modelo em outros anos: %s.",
				requestedModel, yearLabel(filters), joinYears(years)),
			Matches:        alternatives,
			AvailableYears: years,
		}
	}

	if suggestions := m.suggestionTier(filters, available, referencePrice); len(suggestions) > 0 {
		return model.ExactSearchResult{
			Type:    model.MatchSuggestions,
			Message: fmt.Sprintf("Não temos %s em estoque, mas separei opções parecidas que podem te interessar.", requestedModel),
			Matches: suggestions,
		}
	}

	return model.ExactSearchResult{
		Type:    model.MatchUnavailable,
		Message: fmt.Sprintf("No momento não encontrei nenhum veículo compatível com %s %s.", requestedModel, yearLabel(filters)),
		Matches: []model.VehicleMatch{},
	}
}

// exactTier returns vehicles whose model matches and whose year satisfies
// the filter, best-equipped lowest-mileage unit first.
func (m *Matcher) exactTier(filters model.ExtractedFilters, inventory []model.Vehicle) []model.VehicleMatch {
	modelKey := common.NormalizeKey(*filters.Model)

	var matches []model.VehicleMatch
	for _, v := range inventory {
		if !sameModel(modelKey, v.Model) || !filters.MatchesYear(v.Year) {
			continue
		}
		matches = append(matches, model.VehicleMatch{
			Vehicle:   v,
			Score:     100,
			Reasoning: fmt.Sprintf("%s %d exatamente como solicitado", v.DisplayName(), v.Year),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return lessByPriceMileageVersion(matches[i].Vehicle, matches[j].Vehicle)
	})
	return matches
}

// yearAlternativeTier returns same-model vehicles of any year, ranked by
// closeness to the requested year, along with the distinct sorted years
// available for the model.
func (m *Matcher) yearAlternativeTier(filters model.ExtractedFilters, inventory []model.Vehicle) ([]model.VehicleMatch, []int) {
	modelKey := common.NormalizeKey(*filters.Model)
	requested := requestedYear(filters)

	var matches []model.VehicleMatch
	yearSet := make(map[int]struct{})
	for _, v := range inventory {
		if !sameModel(modelKey, v.Model) {
			continue
		}
		distance := yearDistance(filters, v.Year)
		matches = append(matches, model.VehicleMatch{
			Vehicle:   v,
			Score:     YearProximity(distance),
			Reasoning: fmt.Sprintf("%s disponível em %d (solicitado %d)", v.DisplayName(), v.Year, requested),
		})
		yearSet[v.Year] = struct{}{}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return lessByPriceMileageVersion(matches[i].Vehicle, matches[j].Vehicle)
	})

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return matches, years
}

// suggestionTier offers different models of the body type the requested
// model is known for, provided price or year is also in the neighborhood.
func (m *Matcher) suggestionTier(filters model.ExtractedFilters, inventory []model.Vehicle, referencePrice float64) []model.VehicleMatch {
	requestedModel := *filters.Model
	modelKey := common.NormalizeKey(requestedModel)
	wantCategory := m.catalog.CategoryOf(requestedModel)
	requested := requestedYear(filters)

	if referencePrice <= 0 {
		referencePrice = m.catalog.TypicalPriceRange(requestedModel).Midpoint()
	}

	var matches []model.VehicleMatch
	for _, v := range inventory {
		if sameModel(modelKey, v.Model) {
			continue
		}
		if m.catalog.NormalizeCategory(v.BodyType) != wantCategory {
			continue
		}

		priceOK := v.Price > 0 && withinPercent(v.Price, referencePrice, suggestionPriceTolerance)
		yearOK := abs(v.Year-requested) <= suggestionYearWindow
		if !priceOK && !yearOK {
			continue
		}

		score := suggestionBodyPoints
		reasons := []string{fmt.Sprintf("mesma categoria (%s)", wantCategory)}
		if priceOK {
			score += suggestionPricePoints
			reasons = append(reasons, "preço próximo")
		}
		if yearOK {
			score += suggestionYearPoints
			reasons = append(reasons, "ano próximo")
		}

		matches = append(matches, model.VehicleMatch{
			Vehicle:   v,
			Score:     score,
			Reasoning: fmt.Sprintf("%s %d: %s", v.DisplayName(), v.Year, strings.Join(reasons, ", ")),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Vehicle.Price > matches[j].Vehicle.Price
	})
	return matches
}

// YearProximity scores how close a candidate year is to the requested one:
// 10 points off per year of distance, floored at 50 so even a distant year
// of the right model is never rated worthless.
func YearProximity(distance int) int {
	score := 100 - distance*10
	if score < 50 {
		return 50
	}
	return score
}

// ModelsMatch reports whether two model names refer to the same model:
// collapsed to keys, one must contain the other, which matches abbreviated
// and expanded spellings in either direction.
func ModelsMatch(a, b string) bool {
	return sameModel(common.NormalizeKey(a), b)
}

func sameModel(requestedKey, vehicleModel string) bool {
	key := common.NormalizeKey(vehicleModel)
	if key == "" || requestedKey == "" {
		return false
	}
	return strings.Contains(key, requestedKey) || strings.Contains(requestedKey, key)
}

// lessByPriceMileageVersion is the exact-tier ordering: price descending,
// then mileage ascending, then version name ascending case-insensitively.
func lessByPriceMileageVersion(a, b model.Vehicle) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	if a.Mileage != b.Mileage {
		return a.Mileage < b.Mileage
	}
	return strings.ToLower(a.Version) < strings.ToLower(b.Version)
}

// requestedYear resolves the filter's year constraint to a single anchor
// year: the literal year, or the midpoint when a range was supplied.
func requestedYear(filters model.ExtractedFilters) int {
	if filters.Year != nil {
		return *filters.Year
	}
	if filters.YearRange != nil {
		return (filters.YearRange.Min + filters.YearRange.Max) / 2
	}
	return 0
}

// yearDistance measures how far a candidate year is from the filter's
// constraint: zero inside a range, otherwise distance to the nearest edge.
func yearDistance(filters model.ExtractedFilters, year int) int {
	if filters.Year != nil {
		return abs(year - *filters.Year)
	}
	if r := filters.YearRange; r != nil {
		switch {
		case year < r.Min:
			return r.Min - year
		case year > r.Max:
			return year - r.Max
		}
	}
	return 0
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

func withinPercent(value, reference, percent float64) bool {
	band := reference * percent / 100
	return value >= reference-band && value <= reference+band
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func yearLabel(filters model.ExtractedFilters) string {
	if filters.Year != nil {
		return fmt.Sprintf("%d", *filters.Year)
	}
	if filters.YearRange != nil {
		return filters.YearRange.String()
	}
	return ""
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, ", ")
}
