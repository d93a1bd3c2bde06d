package commands

import (
	"os"

	"scriptest/internal/cli"
	"scriptest/internal/config"
	"scriptest/internal/discovery"
	"scriptest/internal/loader"
	"scriptest/internal/storage"
	"scriptest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.IgnoreDirs, os.Stderr)
	scriptLoader := loader.New()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(os.Stdout)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, scriptLoader, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, scriptLoader, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run script tests",
		Long:  "Discover script files, load their exported functions as tests and execute them in order",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringArrayVarP(&flags.Patterns, "filter", "f", nil, "Filter tests by path prefix; prefix with '-' to exclude (e.g. 'checks -checks/Slow')")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a block per test and full stack traces on failure")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List discovered tests",
		Long:  "Discover and list tests without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringArrayVarP(&flags.Patterns, "filter", "f", nil, "Filter tests by path prefix; prefix with '-' to exclude")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
