package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vendedor-ai/carmatch/internal/cli"
	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/fallback"
	"github.com/vendedor-ai/carmatch/internal/model"
)

func searchCmd() *cobra.Command {
	var (
		asJSON         bool
		withFallback   bool
		referencePrice float64
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search inventory with a free-text query",
		Long: `Parse a free-text query like "onix 2019" or "hb20 19/20" and look for
exact matches in the inventory, falling back to year alternatives and
similar-model suggestions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			queryText := strings.Join(args, " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inventory, err := store.ListVehicles(ctx)
			if err != nil {
				return fmt.Errorf("failed to load inventory: %w", err)
			}

			finder := newFinder()
			filters := finder.Parse(queryText)
			common.LogDebug("Parsed search query", common.Fields{
				"query": queryText,
				"model": filters.Model,
				"year":  filters.Year,
				"range": filters.YearRange,
			})

			if withFallback {
				exact, alt := finder.SearchWithFallback(queryText, inventory, referencePrice)
				return renderSearch(asJSON, exact, alt)
			}

			_, exact := finder.Search(queryText, inventory)
			return renderSearch(asJSON, exact, nil)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output the serialized result")
	cmd.Flags().BoolVar(&withFallback, "fallback", false, "broaden the search when nothing matches")
	cmd.Flags().Float64Var(&referencePrice, "price", 0, "reference price for broadening (0 = estimate)")

	return cmd
}

func renderSearch(asJSON bool, exact model.ExactSearchResult, alt *model.FallbackResult) error {
	if asJSON {
		data, err := fallback.MarshalExactResult(exact)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if alt != nil {
			altData, err := fallback.MarshalResult(*alt)
			if err != nil {
				return err
			}
			fmt.Println(string(altData))
		}
		return nil
	}

	cli.RenderExactResult(os.Stdout, exact)
	if alt != nil {
		fmt.Println()
		cli.RenderFallbackResult(os.Stdout, *alt)
	}
	return nil
}
