package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical passes through", raw: "sedan", want: "sedan"},
		{name: "case and accents", raw: "Sedã", want: "sedan"},
		{name: "hatchback synonym", raw: "Hatchback", want: "hatch"},
		{name: "crossover is suv", raw: "crossover", want: "suv"},
		{name: "monovolume is minivan", raw: "monovolume", want: "minivan"},
		{name: "pickup hyphen variant", raw: "Pick-Up", want: "pickup"},
		{name: "compound phrase by containment", raw: "picape cabine dupla", want: "pickup"},
		{name: "compound suv phrase", raw: "utilitário esportivo compacto", want: "suv"},
		{name: "unknown returns normalized input", raw: "Zeppelin", want: "zeppelin"},
		{name: "empty returns empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.NormalizeCategory(tt.raw))
		})
	}
}

func TestNormalizeCategoryNeverEmptyForNonEmptyInput(t *testing.T) {
	catalog := Default()

	for _, raw := range []string{"x", "???", "furgão gigante", "SEDAN", "  suv  "} {
		assert.NotEmpty(t, catalog.NormalizeCategory(raw), "input %q", raw)
	}
}

func TestSameCategory(t *testing.T) {
	catalog := Default()

	assert.True(t, catalog.SameCategory("Hatchback", "hatch"))
	assert.True(t, catalog.SameCategory("cabine dupla", "picape"))
	assert.False(t, catalog.SameCategory("sedan", "suv"))
}
