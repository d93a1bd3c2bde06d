package cli

import "scriptest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Patterns []string
	Verbose  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Patterns: f.Patterns,
		Verbose:  f.Verbose,
	}
}

// UsageError wraps a CLI usage problem (bad flag, bad argument); it maps
// to exit code 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }
