package report

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Inspect renders a value for a failure report, recursing at most depth
// levels into composites before eliding with "...".
func Inspect(v any, depth int) string {
	if v == nil {
		return "<nil>"
	}
	return inspectValue(reflect.ValueOf(v), depth)
}

func inspectValue(v reflect.Value, depth int) string {
	switch v.Kind() {
	case reflect.Invalid:
		return "<nil>"
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
		return inspectValue(v.Elem(), depth)
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Slice, reflect.Array:
		if depth <= 0 {
			return "[...]"
		}
		var parts []string
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, inspectValue(v.Index(i), depth-1))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if depth <= 0 {
			return "{...}"
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		var parts []string
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%v: %s", k.Interface(), inspectValue(v.MapIndex(k), depth-1)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Struct:
		if depth <= 0 {
			return v.Type().Name() + "{...}"
		}
		var parts []string
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", t.Field(i).Name, inspectValue(v.Field(i), depth-1)))
		}
		return v.Type().Name() + "{" + strings.Join(parts, ", ") + "}"
	case reflect.Func, reflect.Chan:
		return v.Type().String()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
