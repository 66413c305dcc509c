// Package scoring implements the weighted similarity scorer that rates how
// well a candidate vehicle matches a target criteria set on a 0-100 scale.
package scoring

import (
	"fmt"
	"math"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/model"
)

// Weights controls the relative importance of each scoring dimension. The
// values are points out of 100 when every dimension is specified.
type Weights struct {
	Category int
	Brand    int
	Price    int
	Features int
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Category: 40,
		Brand:    25,
		Price:    20,
		Features: 15,
	}
}

// Criteria is the target a candidate vehicle is scored against. Brand,
// TargetPrice, Transmission and FuelType are optional: when unset the
// corresponding term is omitted from the weighted sum rather than counted
// as a mismatch.
type Criteria struct {
	Category       string
	Brand          string
	Transmission   string
	FuelType       string
	TargetPrice    float64
	PriceTolerance float64 // percent band around TargetPrice, e.g. 20
}

// Scorer computes similarity scores. Pure and safe for concurrent use.
type Scorer struct {
	catalog *knowledge.Catalog
	weights Weights
}

// New creates a scorer with default weights.
func New(catalog *knowledge.Catalog) *Scorer {
	return NewWithWeights(catalog, DefaultWeights())
}

// NewWithWeights creates a scorer with a custom weight distribution.
func NewWithWeights(catalog *knowledge.Catalog, weights Weights) *Scorer {
	return &Scorer{catalog: catalog, weights: weights}
}

// Score rates vehicle against criteria, returning an integer in [0,100] and
// one MatchingCriterion per evaluated dimension, in evaluation order. The
// criterion details are ready for verbatim display.
func (s *Scorer) Score(vehicle model.Vehicle, criteria Criteria) (int, []model.MatchingCriterion) {
	var total float64
	evaluated := make([]model.MatchingCriterion, 0, 5)

	// Category is always evaluated.
	wantCat := s.catalog.NormalizeCategory(criteria.Category)
	haveCat := s.catalog.NormalizeCategory(vehicle.BodyType)
	if wantCat != "" && wantCat == haveCat {
		total += float64(s.weights.Category)
		evaluated = append(evaluated, model.MatchingCriterion{
			Kind:    model.CriterionCategory,
			Matched: true,
			Detail:  fmt.Sprintf("Mesma categoria (%s)", wantCat),
		})
	} else {
		evaluated = append(evaluated, model.MatchingCriterion{
			Kind:    model.CriterionCategory,
			Matched: false,
			Detail:  fmt.Sprintf("Categoria diferente (%s, procurada %s)", haveCat, wantCat),
		})
	}

	if criteria.Brand != "" {
		matched := common.NormalizeText(criteria.Brand) == common.NormalizeText(vehicle.Brand)
		if matched {
			total += float64(s.weights.Brand)
		}
		detail := fmt.Sprintf("Mesma marca (%s)", vehicle.Brand)
		if !matched {
			detail = fmt.Sprintf("Marca diferente (%s, procurada %s)", vehicle.Brand, criteria.Brand)
		}
		evaluated = append(evaluated, model.MatchingCriterion{
			Kind:    model.CriterionBrand,
			Matched: matched,
			Detail:  detail,
		})
	}

	if criteria.TargetPrice > 0 {
		term := priceProximity(vehicle.Price, criteria.TargetPrice, criteria.PriceTolerance)
		total += float64(s.weights.Price) * term / 100
		matched := term >= 100
		detail := fmt.Sprintf("Preço R$ %.0f dentro da faixa de ±%.0f%%", vehicle.Price, criteria.PriceTolerance)
		if !matched {
			detail = fmt.Sprintf("Preço R$ %.0f fora da faixa de ±%.0f%% (referência R$ %.0f)",
				vehicle.Price, criteria.PriceTolerance, criteria.TargetPrice)
		}
		evaluated = append(evaluated, model.MatchingCriterion{
			Kind:    model.CriterionPrice,
			Matched: matched,
			Detail:  detail,
		})
	}

	total += s.scoreFeatures(vehicle, criteria, &evaluated)

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, evaluated
}

// scoreFeatures evaluates whichever of transmission and fuel type were
// specified; each specified feature contributes an equal fraction of the
// feature weight.
func (s *Scorer) scoreFeatures(vehicle model.Vehicle, criteria Criteria, evaluated *[]model.MatchingCriterion) float64 {
	type feature struct {
		kind model.CriterionKind
		want string
		have string
		name string
	}

	var specified []feature
	if criteria.Transmission != "" {
		specified = append(specified, feature{
			kind: model.CriterionTransmission,
			want: criteria.Transmission,
			have: vehicle.Transmission,
			name: "Câmbio",
		})
	}
	if criteria.FuelType != "" {
		specified = append(specified, feature{
			kind: model.CriterionFuel,
			want: criteria.FuelType,
			have: vehicle.FuelType,
			name: "Combustível",
		})
	}
	if len(specified) == 0 {
		return 0
	}

	share := float64(s.weights.Features) / float64(len(specified))
	var total float64
	for _, f := range specified {
		matched := common.NormalizeText(f.want) == common.NormalizeText(f.have)
		if matched {
			total += share
		}
		detail := fmt.Sprintf("%s %s", f.name, f.have)
		if !matched {
			detail = fmt.Sprintf("%s %s (procurado %s)", f.name, f.have, f.want)
		}
		*evaluated = append(*evaluated, model.MatchingCriterion{
			Kind:    f.kind,
			Matched: matched,
			Detail:  detail,
		})
	}
	return total
}

// priceProximity returns 100 while price sits inside the ±tolerance band
// around target, then decays linearly to 0 at exactly twice the band width
// and clamps there. The decay keeps near-miss prices from falling off a
// cliff at the band edge.
func priceProximity(price, target, tolerancePercent float64) float64 {
	if target <= 0 {
		return 0
	}
	band := target * tolerancePercent / 100
	if band <= 0 {
		return 0
	}
	deviation := math.Abs(price - target)
	if deviation <= band {
		return 100
	}
	if deviation >= 2*band {
		return 0
	}
	return 100 * (1 - (deviation-band)/band)
}
