// Package main provides the entry point for the personsearch CLI and server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, args []string) error {
	rootCmd := &cobra.Command{
		Use:           "personsearch",
		Short:         "Search identity records by name, ranked by confidence",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newSeedCmd(),
		newSearchCmd(),
		newListCmd(),
		newAddCmd(),
		newImportCmd(),
		newExportCmd(),
		newResearchCmd(),
	)

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
