package loader

import (
	"reflect"

	"scriptest/assert"
)

// Symbols exposes the scriptest/assert package to interpreted scripts, so
// a script can `import "scriptest/assert"` and build diff-aware failures.
var Symbols = map[string]map[string]reflect.Value{
	"scriptest/assert/assert": {
		"Equal":        reflect.ValueOf(assert.Equal),
		"True":         reflect.ValueOf(assert.True),
		"Failf":        reflect.ValueOf(assert.Failf),
		"FailureError": reflect.ValueOf((*assert.FailureError)(nil)),
	},
}
