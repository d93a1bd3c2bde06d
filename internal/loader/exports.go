package loader

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// ExportInfo describes one exported top-level declaration of a script, in
// declaration order. Only niladic functions (optionally returning error)
// are runnable; everything else is reported with a hint and excluded.
type ExportInfo struct {
	Name     string
	Runnable bool
	Hint     string
}

// Scan parses a script file and returns its package name and exported
// declarations in source order. Host map iteration order never leaks into
// the result: ordering comes straight from the declaration list.
func Scan(path string) (pkg string, exports []ExportInfo, err error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil || !ast.IsExported(d.Name.Name) {
				continue
			}
			if runnableSignature(d.Type) {
				exports = append(exports, ExportInfo{Name: d.Name.Name, Runnable: true})
			} else {
				exports = append(exports, ExportInfo{
					Name: d.Name.Name,
					Hint: "unsupported signature (want func() or func() error)",
				})
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					for _, name := range s.Names {
						if ast.IsExported(name.Name) {
							exports = append(exports, ExportInfo{Name: name.Name, Hint: "not a function"})
						}
					}
				case *ast.TypeSpec:
					if ast.IsExported(s.Name.Name) {
						exports = append(exports, ExportInfo{Name: s.Name.Name, Hint: "not a function"})
					}
				}
			}
		}
	}

	return file.Name.Name, exports, nil
}

// runnableSignature reports whether a function type is func() or
// func() error, without type parameters.
func runnableSignature(ft *ast.FuncType) bool {
	if ft.TypeParams != nil && len(ft.TypeParams.List) > 0 {
		return false
	}
	if ft.Params != nil && len(ft.Params.List) > 0 {
		return false
	}
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return true
	}
	if len(ft.Results.List) != 1 {
		return false
	}
	ident, ok := ft.Results.List[0].Type.(*ast.Ident)
	return ok && ident.Name == "error"
}
