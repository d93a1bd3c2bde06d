// Package assert provides failure helpers for scriptest test scripts.
// Scripts import it inside the interpreter as "scriptest/assert"; the
// errors it produces carry expected/actual values that the failure
// reporter renders as a structural diff.
package assert

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// FailureError is a test failure, optionally carrying an expected/actual
// pair and the stack captured at the point of failure.
type FailureError struct {
	Msg      string
	expected any
	actual   any
	hasPair  bool
	stack    []byte
}

func (e *FailureError) Error() string {
	return e.Msg
}

// Expected returns the expected value of the failure pair.
func (e *FailureError) Expected() any { return e.expected }

// Actual returns the actual value of the failure pair.
func (e *FailureError) Actual() any { return e.actual }

// HasPair reports whether the failure carries an expected/actual pair.
func (e *FailureError) HasPair() bool { return e.hasPair }

// Stack returns the goroutine stack captured when the failure was built.
func (e *FailureError) Stack() string { return string(e.stack) }

// Equal returns nil when expected and actual are deeply equal, and a
// FailureError carrying both values otherwise.
func Equal(expected, actual any) error {
	if reflect.DeepEqual(expected, actual) {
		return nil
	}
	return &FailureError{
		Msg:      "values are not equal",
		expected: expected,
		actual:   actual,
		hasPair:  true,
		stack:    debug.Stack(),
	}
}

// True returns nil when cond holds and a FailureError with msg otherwise.
func True(cond bool, msg string) error {
	if cond {
		return nil
	}
	return &FailureError{Msg: msg, stack: debug.Stack()}
}

// Failf builds an unconditional failure with a formatted message.
func Failf(format string, args ...any) error {
	return &FailureError{Msg: fmt.Sprintf(format, args...), stack: debug.Stack()}
}
