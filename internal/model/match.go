package model

import "time"

// CriterionKind identifies one dimension evaluated by the similarity scorer.
type CriterionKind string

// Criterion kinds, in the order the scorer evaluates them.
const (
	CriterionCategory     CriterionKind = "category"
	CriterionBrand        CriterionKind = "brand"
	CriterionPrice        CriterionKind = "price"
	CriterionTransmission CriterionKind = "transmission"
	CriterionFuel         CriterionKind = "fuel"
	CriterionYear         CriterionKind = "year"
)

// MatchingCriterion records whether a single scoring dimension matched,
// with a human-readable explanation the presentation layer may use verbatim.
type MatchingCriterion struct {
	Kind    CriterionKind `json:"kind"`
	Detail  string        `json:"detail"`
	Matched bool          `json:"matched"`
}

// ExactMatchType discriminates the outcome of an exact-match search.
type ExactMatchType string

// Exact-match outcomes.
const (
	MatchExact            ExactMatchType = "exact"
	MatchYearAlternatives ExactMatchType = "year_alternatives"
	MatchSuggestions      ExactMatchType = "suggestions"
	MatchUnavailable      ExactMatchType = "unavailable"
)

// VehicleMatch pairs a candidate vehicle with its score and reasoning.
// Constructed fresh per search, never reused.
type VehicleMatch struct {
	Vehicle   Vehicle             `json:"vehicle"`
	Reasoning string              `json:"reasoning"`
	Criteria  []MatchingCriterion `json:"matching_criteria,omitempty"`
	Score     int                 `json:"score"`
}

// ExactSearchResult is the typed outcome of the exact matcher. Timestamp is
// only populated when the result crosses a serialization boundary.
type ExactSearchResult struct {
	Timestamp      *time.Time     `json:"timestamp,omitempty"`
	Type           ExactMatchType `json:"type"`
	Message        string         `json:"message"`
	Matches        []VehicleMatch `json:"matches"`
	AvailableYears []int          `json:"available_years,omitempty"`
}
