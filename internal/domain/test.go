package domain

// TestCase is a single runnable test discovered in a script file.
type TestCase struct {
	ID   string       // `<path-without-extension>/<exportName>`
	Path string       // source file the test came from
	Name string       // exported function name
	Run  func() error // zero-argument test body
}
