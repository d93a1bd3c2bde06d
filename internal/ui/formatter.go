package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"scriptest/internal/domain"
)

// ListEntry is one script file with its discovered test names, for the
// list command.
type ListEntry struct {
	Path  string
	Tests []string
}

// Formatter formats and displays run output on stdout.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to out (stdout when nil).
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	return &Formatter{out: out}
}

// IsTerminal reports whether stdout is a terminal, deciding whether the
// in-place progress display can be used.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintPass prints a per-test PASS line (verbose mode).
func (f *Formatter) PrintPass(id string) {
	fmt.Fprintf(f.out, "%s %s\n", color.GreenString("PASS"), id)
}

// PrintFailure prints the report block for a failed test. In verbose mode
// the full stack trace is appended, indented under the summary.
func (f *Formatter) PrintFailure(failure domain.TestFailure, verbose bool) {
	fmt.Fprintf(f.out, "%s %s\n", color.RedString("FAIL"), failure.TestID)
	if failure.Message != "" {
		fmt.Fprintf(f.out, "  %s\n", failure.Message)
	}
	for _, frame := range failure.Frames {
		fmt.Fprintf(f.out, "  %s\n", color.New(color.Faint).Sprint(frame))
	}
	if failure.Diff != "" {
		fmt.Fprintln(f.out, indent(failure.Diff, "  "))
	}
	if verbose && len(failure.StackTrace) > 0 {
		for _, line := range failure.StackTrace {
			fmt.Fprintf(f.out, "    %s\n", color.New(color.Faint).Sprint(line))
		}
	}
}

// PrintSummary prints the terminal summary line for a run.
func (f *Formatter) PrintSummary(s domain.RunSummary) {
	fmt.Fprintln(f.out)
	if s.Failed == 0 {
		color.New(color.FgGreen).Fprintf(f.out, "✓ ALL TESTS PASSED (%d)\n", s.Total)
	} else {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d TESTS FAILED\n", s.Failed)
	}
}

// PrintTestList prints discovered tests as a tree of files and test names.
func (f *Formatter) PrintTestList(entries []ListEntry) {
	total := 0
	for _, e := range entries {
		total += len(e.Tests)
	}
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test(s) in %d file(s):\n", total, len(entries))

	for i, entry := range entries {
		isLastFile := i == len(entries)-1
		if isLastFile {
			color.New(color.FgCyan).Fprintf(f.out, "└── %s\n", entry.Path)
		} else {
			color.New(color.FgCyan).Fprintf(f.out, "├── %s\n", entry.Path)
		}

		for j, name := range entry.Tests {
			isLastTest := j == len(entry.Tests)-1

			var prefix string
			if isLastFile {
				if isLastTest {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastTest {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Fprintf(f.out, "%s%s\n", prefix, color.YellowString(name))
		}

		if len(entry.Tests) == 0 {
			prefix := "│   └── "
			if isLastFile {
				prefix = "    └── "
			}
			fmt.Fprintf(f.out, "%s%s\n", prefix, color.RedString("(no tests)"))
		}
	}
}

func indent(s, pad string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
