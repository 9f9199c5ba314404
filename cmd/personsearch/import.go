package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/person-search/internal/application/handlers"
)

type importFlags struct {
	format  string
	dryRun  bool
	replace bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from JSON or CSV",
		Long:  "Imports identity records from a structured file. Invalid rows are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().BoolVar(&flags.replace, "replace", false, "Clear existing records before importing")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !slices.Contains(validImportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validImportFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.ImportHandler.Handle(ctx, filePath, handlers.ImportOptions{
			Format:  flags.format,
			DryRun:  flags.dryRun,
			Replace: flags.replace,
		})
		if err != nil {
			return fmt.Errorf("importing %s: %w", filePath, err)
		}

		printImportSummary(cmd.OutOrStdout(), result, flags.dryRun)
		return nil
	})
}

func printImportSummary(w io.Writer, result *handlers.ImportResult, dryRun bool) {
	for _, e := range result.Errors {
		fmt.Fprintf(w, "skipped %s\n", e.Error())
	}

	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}
	fmt.Fprintf(w, "%s %d record(s)", verb, result.Imported)
	if n := len(result.Errors); n > 0 {
		fmt.Fprintf(w, ", %d rejected", n)
	}
	fmt.Fprintln(w)
}
