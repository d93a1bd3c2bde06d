package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the runner
type Config struct {
	// Project settings
	ProjectPath string

	// Results persistence
	ResultsFile string
	ResultsDir  string

	// Reporting settings
	InspectDepth int

	// Directories to ignore when walking for scripts
	IgnoreDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Patterns []string
	Verbose  bool
}

// New creates a new Config with defaults, applying any `.env` overrides
// (SCRIPTEST_RESULTS_DIR, SCRIPTEST_RESULTS_FILE, SCRIPTEST_INSPECT_DEPTH).
func New() *Config {
	// Best-effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		ProjectPath:  DefaultProjectPath,
		ResultsFile:  DefaultResultsFile,
		ResultsDir:   DefaultResultsDir,
		InspectDepth: DefaultInspectDepth,
	}
	cfg.IgnoreDirs = make([]string, len(DefaultIgnoreDirs))
	copy(cfg.IgnoreDirs, DefaultIgnoreDirs)

	if dir := os.Getenv("SCRIPTEST_RESULTS_DIR"); dir != "" {
		cfg.ResultsDir = dir
	}
	if file := os.Getenv("SCRIPTEST_RESULTS_FILE"); file != "" {
		cfg.ResultsFile = file
	}
	if depth := os.Getenv("SCRIPTEST_INSPECT_DEPTH"); depth != "" {
		if n, err := strconv.Atoi(depth); err == nil && n > 0 {
			cfg.InspectDepth = n
		}
	}

	return cfg
}

// GetResultsPath returns the absolute path to the results JSON file, so
// run and failures always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ProjectPath, c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
