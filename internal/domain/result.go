package domain

import (
	"fmt"
	"time"
)

// TestResult represents the outcome of executing a single test case.
type TestResult struct {
	ID       string        // Test identifier
	Path     string        // Source file the test came from
	Passed   bool          // Whether the test passed
	Err      error         // Captured failure value (returned error or recovered panic)
	Stack    string        // Goroutine stack captured at panic recovery, empty otherwise
	Duration time.Duration // Time taken to execute
}

// RunSummary aggregates the results of a run.
type RunSummary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize counts passed and failed results.
func Summarize(results []TestResult) RunSummary {
	s := RunSummary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// FailuresError signals that one or more tests failed; it maps to exit code 1.
type FailuresError struct {
	Count int
}

func (e *FailuresError) Error() string {
	return fmt.Sprintf("%d test(s) failed", e.Count)
}

// ResultsMeta contains metadata about a persisted test run.
type ResultsMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ResultsOutput is the complete persisted structure for a test run.
type ResultsOutput struct {
	Meta    ResultsMeta   `json:"meta"`
	Details []TestFailure `json:"details"`
}
