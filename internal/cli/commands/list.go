package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scriptest/internal/config"
	"scriptest/internal/discovery"
	"scriptest/internal/loader"
	"scriptest/internal/match"
	"scriptest/internal/suite"
	"scriptest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	loader    *loader.Loader
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	l *loader.Loader,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		loader:    l,
		formatter: formatter,
	}
}

// Execute runs the command. Listing only parses the scripts; nothing is
// interpreted or executed.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	matcher, err := match.Compile(lc.config.Flags.Patterns)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{lc.config.ProjectPath}
	}
	files, err := lc.scanner.Scan(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	var entries []ui.ListEntry
	for _, file := range files {
		_, exports, err := loader.Scan(file)
		if err != nil {
			return err
		}

		entry := ui.ListEntry{Path: file}
		for _, exp := range exports {
			if !exp.Runnable {
				continue
			}
			if matcher.Allowed(suite.TestID(file, exp.Name)) {
				entry.Tests = append(entry.Tests, exp.Name)
			}
		}
		entries = append(entries, entry)
	}

	lc.formatter.PrintTestList(entries)
	return nil
}
