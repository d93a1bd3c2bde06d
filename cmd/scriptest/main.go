package main

import (
	"errors"
	"fmt"
	"os"

	"scriptest/internal/cli"
	"scriptest/internal/cli/commands"
	"scriptest/internal/config"
	"scriptest/internal/domain"
	"scriptest/internal/match"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "scriptest",
		Short:         "Minimal script-test runner",
		Long:          `A minimal test runner for Go script files. Every exported function of a script is a test case named by its export key; tests run strictly in order with diff-aware failure reports.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parse problems are usage errors, not runtime failures.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		var usageErr *cli.UsageError
		var patternErr *match.PatternError
		var failuresErr *domain.FailuresError
		switch {
		case errors.As(err, &usageErr), errors.As(err, &patternErr):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		case errors.As(err, &failuresErr):
			// The summary already reported the count.
			os.Exit(1)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
