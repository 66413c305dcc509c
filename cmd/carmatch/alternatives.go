package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vendedor-ai/carmatch/internal/cli"
	"github.com/vendedor-ai/carmatch/internal/fallback"
)

func alternativesCmd() *cobra.Command {
	var (
		year           int
		referencePrice float64
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "alternatives <model>",
		Short: "Find alternatives for a model via the broadening chain",
		Long: `Run the fallback chain for a requested model: year alternatives, then
same brand and category, then same category, then price range alone.
The first strategy with results wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			requestedModel := strings.Join(args, " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inventory, err := store.ListVehicles(ctx)
			if err != nil {
				return fmt.Errorf("failed to load inventory: %w", err)
			}

			var requestedYear *int
			if year > 0 {
				requestedYear = &year
			}

			result := newFinder().Alternatives(requestedModel, requestedYear, inventory, referencePrice)

			if asJSON {
				data, err := fallback.MarshalResult(result)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			cli.RenderFallbackResult(os.Stdout, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "desired model year")
	cmd.Flags().Float64Var(&referencePrice, "price", 0, "reference price (0 = estimate from the model profile)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the serialized result")

	return cmd
}
