package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vendedor-ai/carmatch/internal/cli"
)

func parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <query>",
		Short: "Show the filters extracted from a query",
		Long:  `Debug helper: parse a free-text query and print the extracted model and year filters without touching inventory.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filters := newFinder().Parse(strings.Join(args, " "))

			if asJSON {
				data, err := json.MarshalIndent(filters, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode filters: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Filtros extraídos"))
			if filters.Model != nil {
				fmt.Printf("Modelo: %s\n", *filters.Model)
			} else {
				fmt.Println(cli.SubtleStyle.Render("Modelo: não identificado"))
			}
			switch {
			case filters.Year != nil:
				fmt.Printf("Ano: %d\n", *filters.Year)
			case filters.YearRange != nil:
				fmt.Printf("Anos: %s\n", filters.YearRange)
			default:
				fmt.Println(cli.SubtleStyle.Render("Ano: não identificado"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
