package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample records",
		Long:  "Clears the store and inserts the built-in sample identity records.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				result, err := d.SeedHandler.Handle(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Seeded %d records.\n", result.Seeded)
				return nil
			})
		},
	}
}
