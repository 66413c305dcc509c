package model

import "time"

// FallbackType identifies the broadening strategy that produced a result.
type FallbackType string

// Fallback strategies, in the order the orchestrator tries them.
const (
	FallbackYearAlternative FallbackType = "year_alternative"
	FallbackSameBrand       FallbackType = "same_brand"
	FallbackSameCategory    FallbackType = "same_category"
	FallbackPriceRange      FallbackType = "price_range"
	FallbackNoResults       FallbackType = "no_results"
)

// KnownFallbackType reports whether t is one of the closed set of
// fallback discriminators.
func KnownFallbackType(t FallbackType) bool {
	switch t {
	case FallbackYearAlternative, FallbackSameBrand, FallbackSameCategory,
		FallbackPriceRange, FallbackNoResults:
		return true
	}
	return false
}

// FallbackMetadata carries instrumentation data alongside a fallback result.
// Timestamp is only populated when the result crosses a serialization
// boundary.
type FallbackMetadata struct {
	Timestamp            *time.Time    `json:"timestamp,omitempty"`
	StrategyUsed         FallbackType  `json:"strategy_used"`
	CandidatesConsidered int           `json:"candidates_considered"`
	Elapsed              time.Duration `json:"elapsed_ns"`
}

// FallbackResult is the typed outcome of the fallback orchestrator.
// A result of type no_results always has an empty match list.
type FallbackResult struct {
	Type           FallbackType     `json:"type"`
	Message        string           `json:"message"`
	RequestedModel string           `json:"requested_model"`
	RequestedYear  *int             `json:"requested_year"`
	Matches        []VehicleMatch   `json:"matches"`
	AvailableYears []int            `json:"available_years,omitempty"`
	Metadata       FallbackMetadata `json:"metadata"`
}
