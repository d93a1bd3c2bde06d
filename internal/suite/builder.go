package suite

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"scriptest/internal/domain"
	"scriptest/internal/loader"
	"scriptest/internal/match"
)

// Builder turns discovered script files into an ordered suite of test
// cases: files in discovery order, exports in declaration order within
// each file.
type Builder struct {
	loader  *loader.Loader
	matcher *match.Matcher
	verbose bool
	diag    io.Writer
}

// NewBuilder creates a Builder. Warnings go to diag.
func NewBuilder(l *loader.Loader, m *match.Matcher, verbose bool, diag io.Writer) *Builder {
	if diag == nil {
		diag = os.Stderr
	}
	return &Builder{loader: l, matcher: m, verbose: verbose, diag: diag}
}

// TestID derives the identifier for an export of a script file: the path
// with its extension stripped, joined with the export name by `/`.
func TestID(path, name string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	p = strings.TrimSuffix(p, filepath.Ext(p))
	return p + "/" + name
}

// Build loads every file and accumulates the allowed test cases. Exports
// that are not runnable are warned about and excluded; tests dropped by
// the matcher are silently skipped, filtering is intentional. Identifier
// collisions are not deduplicated: if two files yield the same identifier,
// both are scheduled and both run.
//
// A file that fails to load aborts the build: it cannot yield any
// deterministic test identifiers, so nothing after it is processed.
func (b *Builder) Build(files []string) ([]domain.TestCase, error) {
	var cases []domain.TestCase

	for _, file := range files {
		exports, err := b.loader.Load(file)
		if err != nil {
			return nil, err
		}

		valid := 0
		for _, exp := range exports {
			if exp.Run == nil {
				color.New(color.FgYellow).Fprintf(b.diag, "warning: %s: export %s is not a test: %s\n", file, exp.Name, exp.Hint)
				continue
			}
			valid++

			id := TestID(file, exp.Name)
			if !b.matcher.Allowed(id) {
				continue
			}
			cases = append(cases, domain.TestCase{
				ID:   id,
				Path: file,
				Name: exp.Name,
				Run:  exp.Run,
			})
		}

		if valid == 0 && b.verbose {
			color.New(color.FgYellow).Fprintf(b.diag, "warning: %s has no valid tests\n", file)
		}
	}

	return cases, nil
}
