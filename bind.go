package ini

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/KimNorgaard/go-ini/internal/mapper"
)

var (
	durationType        = reflect.TypeFor[time.Duration]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
)

// bind maps doc onto the value pointed to by v.
func bind(doc *Document, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("ini: Unmarshal(non-pointer %T or nil)", v)
	}
	rv = rv.Elem()
	switch rv.Kind() {
	case reflect.Struct:
		return bindStruct(doc, rv)
	case reflect.Map:
		return bindMap(doc, rv)
	default:
		return fmt.Errorf("ini: cannot unmarshal document into Go value of type %s", rv.Type())
	}
}

func bindStruct(doc *Document, rv reflect.Value) error {
	for _, f := range mapper.Fields(rv.Type()) {
		sec, ok := lookupFold(doc, f.Name)
		if !ok {
			continue
		}
		if err := bindSection(sec, rv.FieldByIndex(f.Index)); err != nil {
			return err
		}
	}
	return nil
}

func bindMap(doc *Document, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("ini: cannot unmarshal document into map with non-string key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	} else {
		rv.Clear()
	}
	for name, sec := range doc.All() {
		elem := reflect.New(mapType.Elem()).Elem()
		if err := bindSection(sec, elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(name).Convert(mapType.Key()), elem)
	}
	return nil
}

// lookupFold finds a section by exact name, then case-insensitively.
func lookupFold(doc *Document, name string) (*Section, bool) {
	if sec, ok := doc.Lookup(name); ok {
		return sec, true
	}
	for n, sec := range doc.All() {
		if strings.EqualFold(n, name) {
			return sec, true
		}
	}
	return nil, false
}

// bindSection fills a struct or string-keyed map from sec.
func bindSection(sec *Section, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	switch {
	case rv.Kind() == reflect.Struct && !reflect.PointerTo(rv.Type()).Implements(textUnmarshalerType):
		fields := mapper.Fields(rv.Type())
		for key, field := range sec.All() {
			f, ok := mapper.Match(fields, key)
			if !ok {
				continue
			}
			if err := bindScalar(field, rv.FieldByIndex(f.Index)); err != nil {
				return &BindError{Section: sec.Name(), Key: key, Err: err}
			}
		}
		return nil
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		if rv.IsNil() {
			rv.Set(reflect.MakeMap(rv.Type()))
		}
		for key, field := range sec.All() {
			elem := reflect.New(rv.Type().Elem()).Elem()
			if err := bindScalar(field, elem); err != nil {
				return &BindError{Section: sec.Name(), Key: key, Err: err}
			}
			rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), elem)
		}
		return nil
	default:
		return &BindError{
			Section: sec.Name(),
			Err:     fmt.Errorf("cannot unmarshal section into Go value of type %s", rv.Type()),
		}
	}
}

// bindScalar stores the text of f in rv using the checked accessors.
func bindScalar(f *Field, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(f.raw))
		}
	}
	if rv.Type() == durationType {
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return err
		}
		rv.SetInt(int64(d))
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(f.raw)
	case reflect.Bool:
		v, err := f.Bool().Checked()
		if err != nil {
			return err
		}
		rv.SetBool(v)
	case reflect.Int32:
		v, err := f.Int32().Checked()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		v, err := f.Int().Checked()
		if err != nil {
			return err
		}
		if rv.OverflowInt(v) {
			return fmt.Errorf("integer value %d overflows Go value of type %s", v, rv.Type())
		}
		rv.SetInt(v)
	case reflect.Uint32:
		v, err := f.Uint32().Checked()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint64, reflect.Uintptr:
		v, err := f.Uint().Checked()
		if err != nil {
			return err
		}
		if rv.OverflowUint(v) {
			return fmt.Errorf("integer value %d overflows Go value of type %s", v, rv.Type())
		}
		rv.SetUint(v)
	case reflect.Float32:
		v, err := f.Float32().Checked()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))
	case reflect.Float64:
		v, err := f.Float().Checked()
		if err != nil {
			return err
		}
		rv.SetFloat(v)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("cannot unmarshal field into non-empty interface %s", rv.Type())
		}
		rv.Set(reflect.ValueOf(f.raw))
	default:
		return fmt.Errorf("cannot unmarshal field into Go value of type %s", rv.Type())
	}
	return nil
}

// unbind fills doc from the struct or map v.
func unbind(doc *Document, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return fmt.Errorf("ini: Marshal(nil %T)", v)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return unbindStruct(doc, rv)
	case reflect.Map:
		return unbindMap(doc, rv)
	default:
		return fmt.Errorf("ini: cannot marshal Go value of type %s into a document", rv.Type())
	}
}

func unbindStruct(doc *Document, rv reflect.Value) error {
	for _, f := range mapper.Fields(rv.Type()) {
		fv := rv.FieldByIndex(f.Index)
		if f.OmitEmpty && mapper.IsEmptyValue(fv) {
			continue
		}
		if err := unbindSection(doc, f.Name, fv); err != nil {
			return err
		}
	}
	return nil
}

func unbindMap(doc *Document, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("ini: map key type must be a string, got %s", rv.Type().Key())
	}
	for _, k := range sortedKeys(rv) {
		if err := unbindSection(doc, k.String(), rv.MapIndex(k)); err != nil {
			return err
		}
	}
	return nil
}

// unbindSection writes the struct or map rv as the section called name.
func unbindSection(doc *Document, name string, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map && rv.IsNil() {
		return nil
	}
	if name == "" {
		return ErrEmptyName
	}

	switch {
	case rv.Kind() == reflect.Struct && !rv.Type().Implements(textMarshalerType):
		sec := doc.Section(name)
		for _, f := range mapper.Fields(rv.Type()) {
			fv := rv.FieldByIndex(f.Index)
			if f.OmitEmpty && mapper.IsEmptyValue(fv) {
				continue
			}
			if err := unbindScalar(sec, f.Name, fv); err != nil {
				return err
			}
		}
		return nil
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		sec := doc.Section(name)
		for _, k := range sortedKeys(rv) {
			if err := unbindScalar(sec, k.String(), rv.MapIndex(k)); err != nil {
				return err
			}
		}
		return nil
	default:
		return &BindError{
			Section: name,
			Err:     fmt.Errorf("cannot marshal Go value of type %s outside a section", rv.Type()),
		}
	}
}

func unbindScalar(sec *Section, key string, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	text, err := formatScalar(rv)
	if err != nil {
		return &BindError{Section: sec.Name(), Key: key, Err: err}
	}
	sec.Set(key, text)
	return nil
}

func formatScalar(rv reflect.Value) (string, error) {
	if rv.Type() == durationType {
		return time.Duration(rv.Int()).String(), nil
	}
	if rv.Type().Implements(textMarshalerType) {
		b, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		return string(b), err
	}

	var f Field
	switch rv.Kind() {
	case reflect.String:
		f.SetText(rv.String())
	case reflect.Bool:
		f.SetBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.SetInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f.SetUint(rv.Uint())
	case reflect.Float32:
		f.SetFloat32(float32(rv.Float()))
	case reflect.Float64:
		f.SetFloat(rv.Float())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
	return f.raw, nil
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(a.String(), b.String())
	})
	return keys
}
