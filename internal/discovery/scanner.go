package discovery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// recognized script extensions
const scriptExt = ".go"

// Scanner expands path arguments into concrete script files. Directories
// are walked; explicit files are checked for a recognized extension and
// skipped with a warning otherwise.
type Scanner struct {
	skipDirs map[string]bool
	diag     io.Writer
}

// NewScanner creates a Scanner that skips the given directory names when
// walking and writes warnings to diag.
func NewScanner(skipDirs []string, diag io.Writer) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	if diag == nil {
		diag = os.Stderr
	}
	return &Scanner{skipDirs: skipMap, diag: diag}
}

// Scan expands the given arguments, in order, into script file paths.
// Discovery order is deterministic: arguments in the order supplied,
// directory entries in lexical walk order.
func (s *Scanner) Scan(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		arg = filepath.Clean(arg)
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("test path does not exist: %s", arg)
		}

		if !info.IsDir() {
			if !strings.HasSuffix(arg, scriptExt) {
				color.New(color.FgYellow).Fprintf(s.diag, "warning: skipping %s: unrecognized extension\n", arg)
				continue
			}
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				name := d.Name()
				// Skip hidden directories (starting with .)
				if strings.HasPrefix(name, ".") && name != "." && name != ".." {
					return filepath.SkipDir
				}
				if s.skipDirs[name] {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasSuffix(d.Name(), scriptExt) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
