// Package report turns captured test failures into reportable form:
// compact stack summaries, bounded value inspection and structural
// expected/actual diffs.
package report

import (
	"errors"
	"strings"

	"scriptest/internal/domain"
)

// summaryFrames is how many stack frames the compact summary keeps.
const summaryFrames = 2

// pairCarrier is implemented by failure values that carry an
// expected/actual pair (scriptest/assert produces them; any error
// exposing the same shape is honored).
type pairCarrier interface {
	Expected() any
	Actual() any
}

// Reporter builds failure reports from test results.
type Reporter struct {
	depth int
}

// NewReporter creates a Reporter that inspects values at most depth
// levels deep.
func NewReporter(depth int) *Reporter {
	return &Reporter{depth: depth}
}

// Build assembles the reportable failure for a failed result. The full
// stack prefers the one captured by the failure value itself (assert
// captures at the failure point) over the executor's panic stack.
func (r *Reporter) Build(result domain.TestResult) domain.TestFailure {
	failure := domain.TestFailure{
		TestID:   result.ID,
		FilePath: result.Path,
	}
	if result.Err == nil {
		return failure
	}
	failure.Message = result.Err.Error()

	stack := result.Stack
	var withStack interface{ Stack() string }
	if errors.As(result.Err, &withStack) && withStack.Stack() != "" {
		stack = withStack.Stack()
	}
	if stack != "" {
		stack = StripANSI(stack)
		failure.Frames = Frames(stack, summaryFrames)
		failure.StackTrace = strings.Split(strings.TrimRight(stack, "\n"), "\n")
	}

	if pair := carriedPair(result.Err); pair != nil {
		failure.Diff = Diff(pair.Expected(), pair.Actual(), r.depth)
	}

	return failure
}

// carriedPair returns the expected/actual carrier of err, or nil when the
// failure has none (a gated carrier with HasPair() false is treated as
// carrying no pair).
func carriedPair(err error) pairCarrier {
	var pair pairCarrier
	if !errors.As(err, &pair) {
		return nil
	}
	if gated, ok := pair.(interface{ HasPair() bool }); ok && !gated.HasPair() {
		return nil
	}
	return pair
}
