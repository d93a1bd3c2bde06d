package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultResultsFile is the default results JSON file name
	DefaultResultsFile = "scriptest-results.json"
	// DefaultResultsDir is the default results directory
	DefaultResultsDir = ".scriptest"
	// DefaultInspectDepth bounds value inspection in failure reports
	DefaultInspectDepth = 4
)

// DefaultIgnoreDirs are the default directories to ignore when walking for scripts
var DefaultIgnoreDirs = []string{
	"vendor",
	"node_modules",
	"testdata",
}
