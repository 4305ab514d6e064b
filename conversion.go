package ini

import (
	"math"
	"strings"

	"github.com/KimNorgaard/go-ini/internal/numeric"
)

// Conversion is the result of reading a field as type T. Value holds the
// converted value even when the conversion failed, in which case it is the
// best effort the parser could make (for example the numeric prefix of
// "42abc", or false for a non-boolean).
type Conversion[T any] struct {
	Value  T
	raw    string
	typ    string
	failed bool
}

// Failed reports whether the field's text was not a valid T.
func (c Conversion[T]) Failed() bool { return c.failed }

// Raw returns the text the conversion was attempted on.
func (c Conversion[T]) Raw() string { return c.raw }

// Type returns the name of the target type, such as "int32".
func (c Conversion[T]) Type() string { return c.typ }

// Or returns the converted value, or def if the conversion failed.
func (c Conversion[T]) Or(def T) T {
	if c.failed {
		return def
	}
	return c.Value
}

// Checked returns the converted value, or an *InvalidValueError if the
// conversion failed.
func (c Conversion[T]) Checked() (T, error) {
	if c.failed {
		var zero T
		return zero, c.Err()
	}
	return c.Value, nil
}

// Err returns nil or the *InvalidValueError describing the failure.
func (c Conversion[T]) Err() error {
	if !c.failed {
		return nil
	}
	return &InvalidValueError{Value: c.raw, Type: c.typ}
}

func convert[T any](f *Field, typ string, v T, ok bool) Conversion[T] {
	return Conversion[T]{Value: v, raw: f.raw, typ: typ, failed: !ok}
}

// Int reads the field as a C-style integer literal: decimal, 0x hex or
// 0-prefixed octal, with an optional sign. Out of range values saturate.
func (f *Field) Int() Conversion[int64] {
	v, ok := numeric.ParseInt(f.raw)
	return convert(f, "int64", v, ok)
}

// Int32 is like Int but saturates to the int32 range.
func (f *Field) Int32() Conversion[int32] {
	v, ok := numeric.ParseInt(f.raw)
	return convert(f, "int32", int32(min(max(v, math.MinInt32), math.MaxInt32)), ok)
}

// Uint reads the field as an unsigned integer literal. A leading minus
// sign makes the conversion fail.
func (f *Field) Uint() Conversion[uint64] {
	v, ok := numeric.ParseUint(f.raw)
	return convert(f, "uint64", v, ok)
}

// Uint32 is like Uint but saturates to the uint32 range.
func (f *Field) Uint32() Conversion[uint32] {
	v, ok := numeric.ParseUint(f.raw)
	return convert(f, "uint32", uint32(min(v, math.MaxUint32)), ok)
}

// Float reads the field as a floating point literal.
func (f *Field) Float() Conversion[float64] {
	v, ok := numeric.ParseFloat(f.raw)
	return convert(f, "float64", v, ok)
}

// Float32 is like Float and narrows the result to single precision.
func (f *Field) Float32() Conversion[float32] {
	v, ok := numeric.ParseFloat(f.raw)
	return convert(f, "float32", float32(v), ok)
}

// Bool reads "true" or "false" in any letter case. Every other text fails
// with a value of false.
func (f *Field) Bool() Conversion[bool] {
	switch {
	case strings.EqualFold(f.raw, "true"):
		return convert(f, "bool", true, true)
	case strings.EqualFold(f.raw, "false"):
		return convert(f, "bool", false, true)
	default:
		return convert(f, "bool", false, false)
	}
}
