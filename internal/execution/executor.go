package execution

import (
	"fmt"
	"runtime/debug"
	"time"

	"scriptest/internal/domain"
)

// Hook is notified after each test settles, with the result and the
// number of results so far.
type Hook func(result domain.TestResult, done int)

// Executor runs a suite strictly in order: one test at a time, each
// awaited to completion before the next begins. A hanging test blocks
// the remainder of the suite; there is no timeout and no cancellation.
type Executor struct {
	hook Hook
}

// NewExecutor creates an Executor. hook may be nil.
func NewExecutor(hook Hook) *Executor {
	return &Executor{hook: hook}
}

// Execute runs every case in the suite and returns one result per case,
// in execution order. A failure never aborts the run; only the aggregate
// failure count affects the final exit status.
func (e *Executor) Execute(cases []domain.TestCase) []domain.TestResult {
	results := make([]domain.TestResult, 0, len(cases))

	for _, tc := range cases {
		result := runOne(tc)
		results = append(results, result)
		if e.hook != nil {
			e.hook(result, len(results))
		}
	}

	return results
}

// runOne invokes a single test body, capturing a returned error or a
// recovered panic as the failure value. The raised value is kept as-is
// so the reporter can inspect ad-hoc fields on it.
func runOne(tc domain.TestCase) (result domain.TestResult) {
	result.ID = tc.ID
	result.Path = tc.Path
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			result.Passed = false
			result.Stack = string(debug.Stack())
			if err, ok := r.(error); ok {
				result.Err = err
			} else {
				result.Err = fmt.Errorf("%v", r)
			}
		}
	}()

	if err := tc.Run(); err != nil {
		result.Err = err
		result.Passed = false
		return result
	}
	result.Passed = true
	return result
}
