package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes an exported struct field that takes part in mapping.
type Field struct {
	Name      string
	Index     []int
	Tagged    bool
	OmitEmpty bool
}

// fieldCache caches the fields of each struct type.
var fieldCache sync.Map // map[reflect.Type][]Field

// Fields returns the mappable fields of the struct type t in declaration
// order. Unexported fields and fields tagged `ini:"-"` are skipped, and the
// fields of embedded structs are promoted.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var fields []Field
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			index := append(append([]int(nil), idx...), i)
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("ini") == "" {
				walk(sf.Type, index)
				continue
			}
			if !sf.IsExported() {
				continue
			}

			tag := sf.Tag.Get("ini")
			if tag == "-" {
				continue
			}

			f := Field{Index: index}
			name, opts, _ := strings.Cut(tag, ",")
			if name != "" {
				f.Name = name
				f.Tagged = true
			} else {
				f.Name = sf.Name
			}

			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if strings.TrimSpace(opt) == "omitempty" {
					f.OmitEmpty = true
				}
			}
			fields = append(fields, f)
		}
	}
	walk(t, nil)

	fieldCache.Store(t, fields)
	return fields
}

// Match returns the field whose name equals name, falling back to a
// case-insensitive match.
func Match(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// IsEmptyValue reports whether v is empty in the sense of omitempty:
// false, 0, a nil pointer or interface, and an empty string, slice or map.
func IsEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
