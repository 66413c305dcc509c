package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/testutil"
)

func TestRenderExactResult(t *testing.T) {
	var buf bytes.Buffer
	RenderExactResult(&buf, model.ExactSearchResult{
		Type:    model.MatchYearAlternatives,
		Message: "Não temos Onix 2019, mas temos o modelo em outros anos: 2021.",
		Matches: []model.VehicleMatch{
			{Vehicle: testutil.Vehicle("v2", testutil.WithYear(2021)), Score: 80, Reasoning: "ano próximo"},
		},
		AvailableYears: []int{2021},
	})

	out := buf.String()
	assert.Contains(t, out, "Outros anos disponíveis")
	assert.Contains(t, out, "Chevrolet Onix LT 1.0")
	assert.Contains(t, out, "Anos disponíveis: 2021")
	assert.Contains(t, out, "ano próximo")
}

func TestRenderExactResultUnavailable(t *testing.T) {
	var buf bytes.Buffer
	RenderExactResult(&buf, model.ExactSearchResult{
		Type:    model.MatchUnavailable,
		Message: "No momento não encontrei nenhum veículo compatível.",
		Matches: []model.VehicleMatch{},
	})

	out := buf.String()
	assert.Contains(t, out, "Nada encontrado")
	assert.NotContains(t, out, "Score", "an empty result renders no table")
}

func TestRenderFallbackResult(t *testing.T) {
	var buf bytes.Buffer
	RenderFallbackResult(&buf, model.FallbackResult{
		Type:           model.FallbackSameCategory,
		Message:        "Separei veículos da categoria hatch de outras marcas.",
		RequestedModel: "Onix",
		Matches: []model.VehicleMatch{
			{Vehicle: testutil.Vehicle("hb", testutil.WithModel("Hyundai", "HB20")), Score: 60},
		},
		Metadata: model.FallbackMetadata{
			StrategyUsed:         model.FallbackSameCategory,
			CandidatesConsidered: 1,
			Elapsed:              42 * time.Microsecond,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Mesma categoria")
	assert.Contains(t, out, "Hyundai HB20")
	assert.Contains(t, out, "candidatos: 1")
}
