package fallback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/matcher"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/scoring"
)

// yearAlternative offers the requested model in nearby years. Units of the
// exact requested year are excluded: the point of this tier is alternatives.
func (e *Engine) yearAlternative(req request, inventory []model.Vehicle) outcome {
	if req.year == nil {
		return outcome{}
	}
	requested := *req.year

	var out outcome
	yearSet := make(map[int]struct{})
	for _, v := range inventory {
		if !matcher.ModelsMatch(req.model, v.Model) || v.Year == requested {
			continue
		}
		distance := abs(v.Year - requested)
		if distance > e.config.MaxYearDistance {
			continue
		}
		out.considered++
		out.matches = append(out.matches, model.VehicleMatch{
			Vehicle:   v,
			Score:     matcher.YearProximity(distance),
			Reasoning: fmt.Sprintf("%s disponível em %d (solicitado %d)", v.DisplayName(), v.Year, requested),
		})
		yearSet[v.Year] = struct{}{}
	}

	sort.SliceStable(out.matches, func(i, j int) bool {
		if out.matches[i].Score != out.matches[j].Score {
			return out.matches[i].Score > out.matches[j].Score
		}
		return lessByPrice(out.matches[i].Vehicle, out.matches[j].Vehicle)
	})

	for y := range yearSet {
		out.years = append(out.years, y)
	}
	sort.Ints(out.years)

	out.message = fmt.Sprintf("Não temos %s %d, mas temos o modelo em anos próximos.", req.model, requested)
	return out
}

// sameBrand offers different models of the same brand and category in the
// price band. The brand is inferred from inventory by locating any vehicle
// matching the requested model; when none exists the strategy yields nothing
// and the chain falls through.
func (e *Engine) sameBrand(req request, inventory []model.Vehicle) outcome {
	brand := inferBrand(req.model, inventory)
	if brand == "" {
		return outcome{}
	}

	criteria := scoring.Criteria{
		Category:       req.category,
		Brand:          brand,
		TargetPrice:    req.referencePrice,
		PriceTolerance: e.config.PriceTolerancePercent,
	}

	out := e.scoredStrategy(req, inventory, criteria, func(v model.Vehicle) bool {
		return common.NormalizeText(v.Brand) == common.NormalizeText(brand) &&
			e.catalog.NormalizeCategory(v.BodyType) == req.category
	})
	out.message = fmt.Sprintf("Não encontrei %s, mas separei outros %s na mesma categoria.", req.model, brand)
	return out
}

// sameCategory drops the brand constraint, keeping category and price band.
func (e *Engine) sameCategory(req request, inventory []model.Vehicle) outcome {
	criteria := scoring.Criteria{
		Category:       req.category,
		TargetPrice:    req.referencePrice,
		PriceTolerance: e.config.PriceTolerancePercent,
	}

	out := e.scoredStrategy(req, inventory, criteria, func(v model.Vehicle) bool {
		return e.catalog.NormalizeCategory(v.BodyType) == req.category
	})
	out.message = fmt.Sprintf("Separei veículos da categoria %s de outras marcas.", req.category)
	return out
}

// priceRange is the last-resort broadening: price band only. The scorer
// still needs a category input, so it gets the default one; it is not used
// as a filter here.
func (e *Engine) priceRange(req request, inventory []model.Vehicle) outcome {
	criteria := scoring.Criteria{
		Category:       knowledge.DefaultCategory,
		TargetPrice:    req.referencePrice,
		PriceTolerance: e.config.PriceTolerancePercent,
	}

	out := e.scoredStrategy(req, inventory, criteria, func(model.Vehicle) bool {
		return true
	})
	out.message = fmt.Sprintf("Separei veículos na faixa de R$ %.0f.", req.referencePrice)
	return out
}

// scoredStrategy applies the shared candidate rules (different model, price
// inside the tolerance band) plus the strategy's own filter, then scores and
// sorts what remains. A non-positive price anchor disables the whole tier.
func (e *Engine) scoredStrategy(req request, inventory []model.Vehicle, criteria scoring.Criteria, keep func(model.Vehicle) bool) outcome {
	if req.referencePrice <= 0 {
		return outcome{}
	}

	band := req.referencePrice * e.config.PriceTolerancePercent / 100
	var out outcome
	for _, v := range inventory {
		if !modelsDiffer(req.model, v.Model) {
			continue
		}
		if v.Price < req.referencePrice-band || v.Price > req.referencePrice+band {
			continue
		}
		if !keep(v) {
			continue
		}
		out.considered++

		score, evaluated := e.scorer.Score(v, criteria)
		out.matches = append(out.matches, model.VehicleMatch{
			Vehicle:   v,
			Score:     score,
			Criteria:  evaluated,
			Reasoning: summarize(evaluated),
		})
	}

	sort.SliceStable(out.matches, func(i, j int) bool {
		if out.matches[i].Score != out.matches[j].Score {
			return out.matches[i].Score > out.matches[j].Score
		}
		return lessByPrice(out.matches[i].Vehicle, out.matches[j].Vehicle)
	})
	return out
}

// inferBrand locates the brand of the requested model in inventory.
func inferBrand(requestedModel string, inventory []model.Vehicle) string {
	for _, v := range inventory {
		if matcher.ModelsMatch(requestedModel, v.Model) {
			return v.Brand
		}
	}
	return ""
}

// summarize joins the matched criterion details into one reasoning line.
func summarize(criteria []model.MatchingCriterion) string {
	var parts []string
	for _, c := range criteria {
		if c.Matched {
			parts = append(parts, c.Detail)
		}
	}
	if len(parts) == 0 {
		return "Alternativa na faixa de preço pesquisada"
	}
	return strings.Join(parts, "; ")
}

func lessByPrice(a, b model.Vehicle) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	if a.Mileage != b.Mileage {
		return a.Mileage < b.Mileage
	}
	return strings.ToLower(a.Version) < strings.ToLower(b.Version)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
