package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/person-search/internal/domain/services"
)

func newResearchCmd() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "research <name>",
		Short: "Summarize what is publicly known about a person",
		Long:  "Asks the configured language model for a web-presence summary. Requires an API key (llm.api_key or OPENAI_API_KEY).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				result, err := d.ResearchHandler.Handle(ctx, args[0], extra)
				if errors.Is(err, services.ErrResearchUnavailable) {
					return errors.New("person research is not configured: set llm.api_key or OPENAI_API_KEY")
				}
				if err != nil {
					return err
				}

				fmt.Println(result.Summary)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&extra, "context", "", "Free-text context about the person")

	return cmd
}
