package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vendedor-ai/carmatch/internal/cli"
	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/storage"
)

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the local inventory database",
	}

	cmd.AddCommand(importInventoryCmd())
	cmd.AddCommand(listInventoryCmd())
	cmd.AddCommand(availabilityCmd())

	return cmd
}

func importInventoryCmd() *cobra.Command {
	const batchSize = 100

	return &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import vehicles from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vehicles, err := storage.LoadCSV(args[0])
			if errors.Is(err, common.ErrEmptyInventory) {
				fmt.Println(cli.InfoStyle.Render("Nothing to import."))
				return nil
			}
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.Default(int64(len(vehicles)), "importing vehicles")
			for start := 0; start < len(vehicles); start += batchSize {
				end := start + batchSize
				if end > len(vehicles) {
					end = len(vehicles)
				}
				if err := store.SaveVehicles(ctx, vehicles[start:end]); err != nil {
					return err
				}
				_ = bar.Add(end - start)
			}

			common.LogInfo("Inventory import finished", common.Fields{
				"file":     args[0],
				"vehicles": len(vehicles),
			})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d vehicles.", len(vehicles))))
			return nil
		},
	}
}

func listInventoryCmd() *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles in the inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var vehicles []model.Vehicle
			if availableOnly {
				vehicles, err = store.ListAvailable(ctx)
			} else {
				vehicles, err = store.ListVehicles(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list vehicles: %w", err)
			}

			if len(vehicles) == 0 {
				fmt.Println(cli.InfoStyle.Render("Inventory is empty. Use 'carmatch inventory import' to load vehicles."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tVeículo\tAno\tKm\tPreço\tDisponível\n")
			for _, v := range vehicles {
				availability := "sim"
				if !v.Available {
					availability = "não"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\tR$ %.0f\t%s\n",
					v.ID, v.DisplayName(), v.Year, v.Mileage, v.Price, availability)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&availableOnly, "available", false, "only show available vehicles")

	return cmd
}

func availabilityCmd() *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "availability <vehicle-id>",
		Short: "Set a vehicle's availability flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetAvailability(ctx, args[0], available); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("Veículo %s não está no estoque.", args[0]), err)
				}
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Vehicle %s availability set to %t.", args[0], available)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", true, "availability value to set")

	return cmd
}
