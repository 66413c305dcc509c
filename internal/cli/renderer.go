package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vendedor-ai/carmatch/internal/model"
)

// RenderExactResult writes a human-readable view of an exact-search result.
func RenderExactResult(w io.Writer, result model.ExactSearchResult) {
	style := TitleStyle
	if result.Type == model.MatchUnavailable {
		style = WarningStyle
	}
	fmt.Fprintln(w, style.Render(headline(result.Type)))
	fmt.Fprintln(w, result.Message)

	if len(result.AvailableYears) > 0 {
		years := make([]string, len(result.AvailableYears))
		for i, y := range result.AvailableYears {
			years[i] = fmt.Sprintf("%d", y)
		}
		fmt.Fprintln(w, SubtleStyle.Render("Anos disponíveis: "+strings.Join(years, ", ")))
	}

	renderMatches(w, result.Matches)
}

// RenderFallbackResult writes a human-readable view of a fallback result.
func RenderFallbackResult(w io.Writer, result model.FallbackResult) {
	style := TitleStyle
	if result.Type == model.FallbackNoResults {
		style = WarningStyle
	}
	fmt.Fprintln(w, style.Render(fallbackHeadline(result.Type)))
	fmt.Fprintln(w, result.Message)
	renderMatches(w, result.Matches)
	fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("estratégia: %s, candidatos: %d, tempo: %s",
		result.Metadata.StrategyUsed, result.Metadata.CandidatesConsidered, result.Metadata.Elapsed)))
}

func renderMatches(w io.Writer, matches []model.VehicleMatch) {
	if len(matches) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\n%s\t%s\t%s\t%s\t%s\n", "Veículo", "Ano", "Km", "Preço", "Score")
	for _, m := range matches {
		v := m.Vehicle
		fmt.Fprintf(tw, "%s\t%d\t%d\t R$ %.0f\t%s\n",
			v.DisplayName(), v.Year, v.Mileage, v.Price,
			ScoreStyle.Render(fmt.Sprintf("%d", m.Score)))
	}
	_ = tw.Flush()

	for _, m := range matches {
		if m.Reasoning != "" {
			fmt.Fprintln(w, SubtleStyle.Render("  • "+m.Reasoning))
		}
	}
}

func headline(t model.ExactMatchType) string {
	switch t {
	case model.MatchExact:
		return "Veículo encontrado"
	case model.MatchYearAlternatives:
		return "Outros anos disponíveis"
	case model.MatchSuggestions:
		return "Sugestões parecidas"
	default:
		return "Nada encontrado"
	}
}

func fallbackHeadline(t model.FallbackType) string {
	switch t {
	case model.FallbackYearAlternative:
		return "Anos alternativos"
	case model.FallbackSameBrand:
		return "Mesma marca"
	case model.FallbackSameCategory:
		return "Mesma categoria"
	case model.FallbackPriceRange:
		return "Mesma faixa de preço"
	default:
		return "Nada encontrado"
	}
}
