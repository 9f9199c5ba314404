package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/person-search/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a person-search workspace",
		Long:  "Creates a .personsearch directory with a default configuration file.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(_ *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Store: %s (%s)\n", result.Driver, result.SQLitePath)
	fmt.Println("Run 'personsearch seed' to load the sample records.")

	return nil
}
