package ini

import (
	"encoding"
	"fmt"
	"strconv"
)

// Field is a single configuration value. Its text is the only thing stored;
// the typed accessors parse it on every call and never modify it.
type Field struct {
	raw string
}

// NewField returns a field holding raw.
func NewField(raw string) *Field {
	return &Field{raw: raw}
}

// Text returns the stored text. It never fails.
func (f *Field) Text() string {
	return f.raw
}

func (f *Field) String() string {
	return f.raw
}

// SetText stores s verbatim.
func (f *Field) SetText(s string) {
	f.raw = s
}

// SetInt stores the decimal form of v.
func (f *Field) SetInt(v int64) {
	f.raw = strconv.FormatInt(v, 10)
}

// SetUint stores the decimal form of v.
func (f *Field) SetUint(v uint64) {
	f.raw = strconv.FormatUint(v, 10)
}

// SetFloat stores the shortest decimal form that reads back as v.
func (f *Field) SetFloat(v float64) {
	f.raw = strconv.FormatFloat(v, 'g', -1, 64)
}

// SetFloat32 is like SetFloat for single precision values.
func (f *Field) SetFloat32(v float32) {
	f.raw = strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetBool stores "true" or "false".
func (f *Field) SetBool(v bool) {
	f.raw = strconv.FormatBool(v)
}

// Set stores any supported scalar: strings, signed and unsigned integers,
// floats, booleans, encoding.TextMarshaler and fmt.Stringer values.
func (f *Field) Set(v any) error {
	switch v := v.(type) {
	case string:
		f.SetText(v)
	case []byte:
		f.SetText(string(v))
	case bool:
		f.SetBool(v)
	case int:
		f.SetInt(int64(v))
	case int8:
		f.SetInt(int64(v))
	case int16:
		f.SetInt(int64(v))
	case int32:
		f.SetInt(int64(v))
	case int64:
		f.SetInt(v)
	case uint:
		f.SetUint(uint64(v))
	case uint8:
		f.SetUint(uint64(v))
	case uint16:
		f.SetUint(uint64(v))
	case uint32:
		f.SetUint(uint64(v))
	case uint64:
		f.SetUint(v)
	case float32:
		f.SetFloat32(v)
	case float64:
		f.SetFloat(v)
	case *Field:
		f.raw = v.raw
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return err
		}
		f.SetText(string(b))
	case fmt.Stringer:
		f.SetText(v.String())
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}
