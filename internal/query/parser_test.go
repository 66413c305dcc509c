package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/model"
)

func newTestParser() *Parser {
	p := New(knowledge.Default())
	p.now = func() time.Time {
		return time.Date(2029, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func TestParseModelAndYear(t *testing.T) {
	tests := []struct {
		wantYear  *int
		wantRange *model.YearRange
		name      string
		query     string
		wantModel string
	}{
		{
			name:      "model then four digit year",
			query:     "onix 2019",
			wantModel: "Onix",
			wantYear:  intp(2019),
		},
		{
			name:      "year then model",
			query:     "2019 onix",
			wantModel: "Onix",
			wantYear:  intp(2019),
		},
		{
			name:      "two digit year",
			query:     "onix 19",
			wantModel: "Onix",
			wantYear:  intp(2019),
		},
		{
			name:      "two digit year in the nineties",
			query:     "gol 95",
			wantModel: "Gol",
			wantYear:  intp(1995),
		},
		{
			name:      "connector range",
			query:     "onix 2018 a 2020",
			wantModel: "Onix",
			wantRange: &model.YearRange{Min: 2018, Max: 2020},
		},
		{
			name:      "accented connector range",
			query:     "onix 2018 até 2020",
			wantModel: "Onix",
			wantRange: &model.YearRange{Min: 2018, Max: 2020},
		},
		{
			name:      "hyphen range",
			query:     "onix 2018-2020",
			wantModel: "Onix",
			wantRange: &model.YearRange{Min: 2018, Max: 2020},
		},
		{
			name:      "reversed range is sorted",
			query:     "onix 2020 a 2018",
			wantModel: "Onix",
			wantRange: &model.YearRange{Min: 2018, Max: 2020},
		},
		{
			name:      "four digit slash range",
			query:     "onix 2019/2020",
			wantModel: "Onix",
			wantRange: &model.YearRange{Min: 2019, Max: 2020},
		},
		{
			name:      "two digit slash range",
			query:     "hb20 19/20",
			wantModel: "Hb20",
			wantRange: &model.YearRange{Min: 2019, Max: 2020},
		},
		{
			name:      "longer token wins over prefix",
			query:     "onix plus 2020",
			wantModel: "Onix Plus",
			wantYear:  intp(2020),
		},
		{
			name:      "sedan trim not shadowed",
			query:     "quero um hb20s 2021",
			wantModel: "Hb20s",
			wantYear:  intp(2021),
		},
		{
			name:      "model only",
			query:     "tem onix?",
			wantModel: "Onix",
		},
		{
			name:     "year only",
			query:    "algo de 2019",
			wantYear: intp(2019),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := newTestParser().Parse(tt.query)

			assert.Equal(t, tt.query, filters.RawQuery, "raw query must be preserved")

			if tt.wantModel == "" {
				assert.Nil(t, filters.Model)
			} else {
				require.NotNil(t, filters.Model)
				assert.Equal(t, tt.wantModel, *filters.Model)
			}

			if tt.wantYear == nil {
				assert.Nil(t, filters.Year)
			} else {
				require.NotNil(t, filters.Year)
				assert.Equal(t, *tt.wantYear, *filters.Year)
			}

			if tt.wantRange == nil {
				assert.Nil(t, filters.YearRange)
			} else {
				require.NotNil(t, filters.YearRange)
				assert.Equal(t, *tt.wantRange, *filters.YearRange)
			}
		})
	}
}

func TestParseYearAndRangeMutuallyExclusive(t *testing.T) {
	queries := []string{"onix 2019", "onix 2018 a 2020", "onix 19/20", "onix", ""}

	for _, q := range queries {
		filters := newTestParser().Parse(q)
		assert.False(t, filters.Year != nil && filters.YearRange != nil,
			"query %q produced both a year and a range", q)
	}
}

func TestParseRejectsImplausibleYears(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "too old expanded", query: "gol 49"},     // 1949 < 1950
		{name: "far future", query: "onix 2099"},
		{name: "before automobiles", query: "onix 1900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := newTestParser().Parse(tt.query)
			assert.Nil(t, filters.Year)
			assert.Nil(t, filters.YearRange)
		})
	}

	// currentYear+1 is the inclusive upper bound for the fixed test clock.
	filters := newTestParser().Parse("onix 2030")
	require.NotNil(t, filters.Year)
	assert.Equal(t, 2030, *filters.Year)

	filters = newTestParser().Parse("onix 2031")
	assert.Nil(t, filters.Year)
}

func TestParseTwoDigitExpansion(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		digits string
		want   int
	}{
		{digits: "00", want: 2000},
		{digits: "15", want: 2015},
		{digits: "30", want: 2030},
		{digits: "31", want: 1931}, // expanded, then rejected as implausible
		{digits: "51", want: 1951},
		{digits: "99", want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			filters := p.Parse("onix " + tt.digits)
			if tt.want < minVehicleYear {
				assert.Nil(t, filters.Year)
				return
			}
			require.NotNil(t, filters.Year)
			assert.Equal(t, tt.want, *filters.Year)
		})
	}
}

func TestParseDoesNotConsumeDigitsInsideModelTokens(t *testing.T) {
	filters := newTestParser().Parse("hb20")

	require.NotNil(t, filters.Model)
	assert.Equal(t, "Hb20", *filters.Model)
	assert.Nil(t, filters.Year, "the 20 in hb20 is not a year")
	assert.Nil(t, filters.YearRange)
}

func TestParseEmptyQuery(t *testing.T) {
	filters := newTestParser().Parse("   ")

	assert.Equal(t, "   ", filters.RawQuery)
	assert.Nil(t, filters.Model)
	assert.False(t, filters.HasYear())
}

func intp(v int) *int {
	return &v
}
