package model

import "fmt"

// YearRange is an inclusive range of model years.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ExtractedFilters holds the structured filters parsed from a free-text
// query. Year and YearRange are mutually exclusive: when a range was found
// the single-year field is always nil, and vice versa.
type ExtractedFilters struct {
	Model     *string    `json:"model"`
	Year      *int       `json:"year"`
	YearRange *YearRange `json:"year_range"`
	RawQuery  string     `json:"raw_query"`
}

// HasModel reports whether a model name was extracted.
func (f ExtractedFilters) HasModel() bool {
	return f.Model != nil && *f.Model != ""
}

// HasYear reports whether either a single year or a year range was extracted.
func (f ExtractedFilters) HasYear() bool {
	return f.Year != nil || f.YearRange != nil
}

// MatchesYear reports whether the given year satisfies the extracted year
// constraint. A filter with no year constraint matches nothing; callers are
// expected to check HasYear first.
func (f ExtractedFilters) MatchesYear(year int) bool {
	if f.Year != nil {
		return *f.Year == year
	}
	if f.YearRange != nil {
		return f.YearRange.Contains(year)
	}
	return false
}
