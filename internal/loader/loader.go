package loader

import (
	"fmt"
	"os"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Export is one exported binding of a loaded script. Run is nil when the
// export is not a runnable test; Hint then says why.
type Export struct {
	Name string
	Run  func() error
	Hint string
}

// Loader loads script files through an embedded interpreter and captures
// their exported bindings in declaration order.
//
// Each load gets a fresh interpreter which is discarded once the exports
// are captured, so repeated loads of the same path within one process
// never observe stale module state.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load interprets the script at path and returns its exported bindings in
// declaration order. Runnable exports are wrapped as func() error; a plain
// func() body fails by panicking, which the executor recovers.
//
// Any interpretation error (syntax error, missing import, bad symbol)
// is returned as-is: a script that cannot be loaded aborts the whole run.
func (l *Loader) Load(path string) ([]Export, error) {
	pkg, infos, err := Scan(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("load assert symbols: %w", err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	exports := make([]Export, 0, len(infos))
	for _, info := range infos {
		if !info.Runnable {
			exports = append(exports, Export{Name: info.Name, Hint: info.Hint})
			continue
		}
		v, err := i.Eval(pkg + "." + info.Name)
		if err != nil {
			return nil, fmt.Errorf("load %s: resolve %s: %w", path, info.Name, err)
		}
		switch fn := v.Interface().(type) {
		case func() error:
			exports = append(exports, Export{Name: info.Name, Run: fn})
		case func():
			exports = append(exports, Export{Name: info.Name, Run: func() error {
				fn()
				return nil
			}})
		default:
			// Scan accepted the signature, so the interpreter should
			// have produced one of the two shapes above.
			return nil, fmt.Errorf("load %s: %s has unexpected type %T", path, info.Name, v.Interface())
		}
	}

	return exports, nil
}
