package report

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/google/go-cmp/cmp"
)

// isComposite reports whether v is a map, slice, array or struct, looking
// through pointers and interfaces. Composites are diffed structurally;
// anything else is shown as two labeled inspection blocks.
func isComposite(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// normalize converts a value into a plain tree of maps, slices and
// scalars for comparison. Non-serializable values are special-cased:
// regular expressions render as their source pattern, errors as their
// stack (or message when no stack is attached).
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *regexp.Regexp:
		return x.String()
	case error:
		if s, ok := x.(interface{ Stack() string }); ok && s.Stack() != "" {
			return StripANSI(s.Stack())
		}
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			m[fmt.Sprint(k.Interface())] = normalize(rv.MapIndex(k).Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s = append(s, normalize(rv.Index(i).Interface()))
		}
		return s
	case reflect.Struct:
		t := rv.Type()
		m := make(map[string]any)
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			m[t.Field(i).Name] = normalize(rv.Field(i).Interface())
		}
		return m
	case reflect.Func, reflect.Chan:
		return rv.Type().String()
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Interface()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Diff renders an expected/actual pair. When both sides are composite it
// produces a structural diff over their normalized trees; otherwise two
// labeled blocks with bounded-depth inspections.
func Diff(expected, actual any, depth int) string {
	if isComposite(expected) && isComposite(actual) {
		d := cmp.Diff(normalize(expected), normalize(actual))
		if d == "" {
			return ""
		}
		return "diff (-expected +actual):\n" + d
	}
	return fmt.Sprintf("expected:\n  %s\nactual:\n  %s", Inspect(expected, depth), Inspect(actual, depth))
}
