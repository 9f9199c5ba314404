package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/person-search/internal/application/handlers"
	"github.com/ersonp/person-search/internal/domain/entities"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search records by name",
		Long:  "Finds up to five records whose name contains the given fragment, highest confidence first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			return withDeps(ctx, func(d *Deps) error {
				result, err := d.SearchHandler.HandleSearch(ctx, &name)
				if err != nil {
					return fmt.Errorf("searching records: %w", err)
				}

				if len(result.Persons) == 0 {
					fmt.Println("No records found.")
					return nil
				}

				fmt.Printf("Found %d records:\n\n", len(result.Persons))
				displayPersons(os.Stdout, result.Persons, true)
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Long:  "Lists every stored record in insertion order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				persons, err := d.SearchHandler.HandleList(ctx)
				if err != nil {
					return err
				}

				if len(persons) == 0 {
					fmt.Println("No records found.")
					return nil
				}

				fmt.Printf("Showing %d records:\n\n", len(persons))
				displayPersons(os.Stdout, persons, false)
				return nil
			})
		},
	}
}

type addFlags struct {
	platform   string
	profileURL string
	confidence float64
	verified   bool
}

func newAddCmd() *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a single record",
		Long:  "Inserts one identity record stamped with the current time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				saved, err := d.SearchHandler.HandleAdd(ctx, handlers.AddRequest{
					Name:       args[0],
					Platform:   flags.platform,
					ProfileURL: flags.profileURL,
					Confidence: flags.confidence,
					IsVerified: flags.verified,
				})
				if err != nil {
					return err
				}

				fmt.Printf("Added record %d: %s (%s)\n", saved.ID, saved.Name, saved.Platform)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flags.platform, "platform", "p", "", "Platform label, e.g. LinkedIn (required)")
	cmd.Flags().StringVarP(&flags.profileURL, "url", "u", "", "Profile URL")
	cmd.Flags().Float64VarP(&flags.confidence, "confidence", "c", 0, "Confidence score between 0 and 1")
	cmd.Flags().BoolVar(&flags.verified, "verified", false, "Mark the record as verified")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("confidence")

	return cmd
}

// displayPersons prints records one block each. ranked prefixes a position.
func displayPersons(w io.Writer, persons []entities.Person, ranked bool) {
	for i, p := range persons {
		verified := ""
		if p.IsVerified {
			verified = " [verified]"
		}

		if ranked {
			fmt.Fprintf(w, "%d. %s on %s (%.2f)%s\n", i+1, p.Name, p.Platform, p.Confidence, verified)
		} else {
			fmt.Fprintf(w, "ID: %d\n  %s on %s (%.2f)%s\n", p.ID, p.Name, p.Platform, p.Confidence, verified)
		}
		if p.ProfileURL != "" {
			fmt.Fprintf(w, "   %s\n", p.ProfileURL)
		}
		fmt.Fprintf(w, "   Last seen: %s\n\n", p.LastSeen.Format(time.RFC3339))
	}
}
