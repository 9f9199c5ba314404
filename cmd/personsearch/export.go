package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/person-search/internal/domain/entities"
)

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to file",
		Long:  "Exports every record as JSON or CSV. Both formats can be read back by import.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		persons, err := d.SearchHandler.HandleList(ctx)
		if err != nil {
			return err
		}

		if len(persons) == 0 {
			return fmt.Errorf("no records found to export")
		}

		return export(persons, flags.format, flags.output)
	})
}

func export(persons []entities.Person, format, output string) (err error) {
	var w io.Writer = os.Stdout

	if output != "" {
		var f *os.File
		f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatPersons(w, persons, format); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output != "" {
		fmt.Printf("Exported %d records to %s\n", len(persons), output)
	}

	return nil
}

func formatPersons(w io.Writer, persons []entities.Person, format string) error {
	switch format {
	case "json":
		return formatJSON(w, persons)
	case "csv":
		return formatCSV(w, persons)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, persons []entities.Person) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(persons)
}

// formatCSV writes the columns understood by the CSV import parser.
func formatCSV(w io.Writer, persons []entities.Person) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "name", "platform", "profile_url", "confidence", "is_verified", "last_seen"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, p := range persons {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Platform,
			p.ProfileURL,
			strconv.FormatFloat(p.Confidence, 'f', -1, 64),
			strconv.FormatBool(p.IsVerified),
			p.LastSeen.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
