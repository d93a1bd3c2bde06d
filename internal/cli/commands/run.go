package commands

import (
	"os"
	"time"

	"scriptest/internal/config"
	"scriptest/internal/discovery"
	"scriptest/internal/domain"
	"scriptest/internal/execution"
	"scriptest/internal/loader"
	"scriptest/internal/match"
	"scriptest/internal/report"
	"scriptest/internal/storage"
	"scriptest/internal/suite"
	"scriptest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	loader    *loader.Loader
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	l *loader.Loader,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		loader:    l,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// A malformed pattern aborts before anything is discovered or run.
	matcher, err := match.Compile(rc.config.Flags.Patterns)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{rc.config.ProjectPath}
	}
	files, err := rc.scanner.Scan(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	verbose := rc.config.Flags.Verbose
	builder := suite.NewBuilder(rc.loader, matcher, verbose, os.Stderr)
	cases, err := builder.Build(files)
	if err != nil {
		// A file that cannot be loaded yields no deterministic test
		// identifiers; the whole run aborts here.
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No tests to run")
		return nil
	}

	reporter := report.NewReporter(rc.config.InspectDepth)

	var progress *ui.Progress
	if !verbose && ui.IsTerminal() {
		progress = ui.NewProgress(len(cases))
	}

	var failures []domain.TestFailure
	var passed, failed int
	hook := func(result domain.TestResult, done int) {
		if result.Passed {
			passed++
		} else {
			failed++
			failures = append(failures, reporter.Build(result))
		}
		switch {
		case verbose:
			if result.Passed {
				rc.formatter.PrintPass(result.ID)
			} else {
				rc.formatter.PrintFailure(failures[len(failures)-1], true)
			}
		case progress != nil:
			progress.Update(done, passed, failed, result.ID)
		}
	}

	start := time.Now()
	results := execution.NewExecutor(hook).Execute(cases)
	duration := time.Since(start)

	if progress != nil {
		progress.Finish()
	}
	if !verbose {
		for _, failure := range failures {
			rc.formatter.PrintFailure(failure, false)
		}
	}

	if err := rc.storage.Save(results, failures, duration); err != nil {
		return err
	}

	summary := domain.Summarize(results)
	rc.formatter.PrintSummary(summary)

	if summary.Failed > 0 {
		return &domain.FailuresError{Count: summary.Failed}
	}
	return nil
}
