package simpleexcel

import (
	"reflect"
	"strings"
)

// rowsOf expands bound section data into one value per row. A slice or array
// yields its elements; any other non-nil value is a single row.
func rowsOf(data interface{}) []reflect.Value {
	if data == nil {
		return nil
	}
	val := indirect(reflect.ValueOf(data))
	if !val.IsValid() {
		return nil
	}

	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		rows := make([]reflect.Value, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			rows = append(rows, val.Index(i))
		}
		return rows
	default:
		return []reflect.Value{val}
	}
}

// extractValue resolves a dotted field path against a struct or a string-keyed map.
// Missing or unexported fields resolve to nil.
func extractValue(item reflect.Value, path string) interface{} {
	cur := item
	for _, part := range strings.Split(path, ".") {
		cur = indirect(cur)
		if !cur.IsValid() {
			return nil
		}

		switch cur.Kind() {
		case reflect.Struct:
			cur = cur.FieldByName(part)
		case reflect.Map:
			if cur.Type().Key().Kind() != reflect.String {
				return nil
			}
			cur = cur.MapIndex(reflect.ValueOf(part).Convert(cur.Type().Key()))
		default:
			return nil
		}
		if !cur.IsValid() {
			return nil
		}
	}

	cur = indirect(cur)
	if !cur.IsValid() || !cur.CanInterface() {
		return nil
	}
	return cur.Interface()
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
