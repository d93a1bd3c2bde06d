package domain

// TestFailure represents a failed test case in reportable form.
type TestFailure struct {
	TestID     string   `json:"test_id"`
	FilePath   string   `json:"file_path"`
	Message    string   `json:"message"`
	Frames     []string `json:"frames,omitempty"`      // Compact "at <file:line>" summary frames
	Diff       string   `json:"diff,omitempty"`        // Structural expected/actual diff, if any
	StackTrace []string `json:"stack_trace,omitempty"` // Full stack, ANSI-stripped
	Resolved   bool     `json:"resolved,omitempty"`    // Track if failure is marked as resolved
}
