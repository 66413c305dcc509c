// Package query extracts structured search filters from free-text queries.
package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/model"
)

// minVehicleYear bounds how far back a parsed year may plausibly go.
const minVehicleYear = 1950

var (
	// "2018 a 2020", "2018 até 2020" (accents already stripped), "2018-2020".
	reConnectorRange = regexp.MustCompile(`\b(\d{4})(?:\s+(?:a|ate)\s+|\s*-\s*)(\d{4})\b`)
	// Model-year notation: "2019/2020".
	reSlashRange4 = regexp.MustCompile(`\b(\d{4})\s*/\s*(\d{4})\b`)
	// Abbreviated model-year notation: "19/20".
	reSlashRange2 = regexp.MustCompile(`\b(\d{2})\s*/\s*(\d{2})\b`)
	reYear4       = regexp.MustCompile(`\b\d{4}\b`)
	// A 2-digit year must stand alone, bounded by whitespace or the string
	// edges, so digits embedded in a model token are never consumed.
	reYear2 = regexp.MustCompile(`(?:^|\s)(\d{2})(?:\s|$)`)
)

// Parser turns raw queries into ExtractedFilters using the knowledge
// catalog's model dictionary.
type Parser struct {
	catalog *knowledge.Catalog
	now     func() time.Time
}

// New creates a parser backed by the given catalog.
func New(catalog *knowledge.Catalog) *Parser {
	return &Parser{catalog: catalog, now: time.Now}
}

// Parse extracts a model name and a year or year range from query. Fields
// that cannot be resolved are left nil; the raw query is always preserved.
func (p *Parser) Parse(query string) model.ExtractedFilters {
	filters := model.ExtractedFilters{RawQuery: query}
	normalized := common.NormalizeText(query)
	if normalized == "" {
		return filters
	}

	if name, ok := p.extractModel(normalized); ok {
		filters.Model = &name
	}

	if rng, ok := p.extractYearRange(normalized); ok {
		filters.YearRange = &rng
	} else if year, ok := p.extractYear(normalized); ok {
		filters.Year = &year
	}

	return filters
}

// extractModel matches the normalized query against the model dictionary,
// longest token first so a longer name is not shadowed by one of its
// prefixes. The match is title-cased per word for display.
func (p *Parser) extractModel(normalized string) (string, bool) {
	for _, token := range p.catalog.ModelTokens() {
		if containsToken(normalized, token) {
			return common.TitleWords(token), true
		}
	}
	return "", false
}

func (p *Parser) extractYearRange(normalized string) (model.YearRange, bool) {
	for _, re := range []*regexp.Regexp{reConnectorRange, reSlashRange4} {
		if m := re.FindStringSubmatch(normalized); m != nil {
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			if p.validYear(a) && p.validYear(b) {
				return sortedRange(a, b), true
			}
		}
	}

	if m := reSlashRange2.FindStringSubmatch(normalized); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		a, b = expandYear(a), expandYear(b)
		if p.validYear(a) && p.validYear(b) {
			return sortedRange(a, b), true
		}
	}

	return model.YearRange{}, false
}

func (p *Parser) extractYear(normalized string) (int, bool) {
	for _, raw := range reYear4.FindAllString(normalized, -1) {
		year, _ := strconv.Atoi(raw)
		if p.validYear(year) {
			return year, true
		}
	}

	for _, m := range reYear2.FindAllStringSubmatch(normalized, -1) {
		v, _ := strconv.Atoi(m[1])
		if year := expandYear(v); p.validYear(year) {
			return year, true
		}
	}

	return 0, false
}

// expandYear maps a 2-digit abbreviation to a full year: values up to 30
// land in the 2000s, the rest in the 1900s.
func expandYear(v int) int {
	if v <= 30 {
		return 2000 + v
	}
	return 1900 + v
}

func (p *Parser) validYear(year int) bool {
	return year >= minVehicleYear && year <= p.now().Year()+1
}

func sortedRange(a, b int) model.YearRange {
	if a > b {
		a, b = b, a
	}
	return model.YearRange{Min: a, Max: b}
}

// containsToken reports whether token occurs in text bounded by non-word
// characters on both sides.
func containsToken(text, token string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], token)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(token)
		if (start == 0 || !isWordByte(text[start-1])) &&
			(end == len(text) || !isWordByte(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
