package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"+42", 42, true},
		{"-42", -42, true},
		{" \t42", 42, true},
		{"0x1F", 31, true},
		{"0X1f", 31, true},
		{"-0x10", -16, true},
		{"017", 15, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"9223372036854775808", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"-9223372036854775809", math.MinInt64, true},
		{"99999999999999999999999", math.MaxInt64, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"+", 0, false},
		{"   ", 0, false},
		{"42 ", 42, false},
		{"42abc", 42, false},
		{"1.5", 1, false},
		{"08", 0, false},
		{"0x", 0, false},
		{"0xg", 0, false},
		{"0x1g", 1, false},
		{"1_000", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseInt(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseUint(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"+42", 42, true},
		{"0xff", 255, true},
		{"0777", 511, true},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", math.MaxUint64, true},
		{"-1", math.MaxUint64, false},
		{"-5", math.MaxUint64 - 4, false},
		{"", 0, false},
		{"x", 0, false},
		{"12 ", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseUint(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"0", 0, true},
		{"3.14", 3.14, true},
		{"-3.14", -3.14, true},
		{"+.5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"1E-2", 0.01, true},
		{"6.626e-34", 6.626e-34, true},
		{"0x10", 16, true},
		{"0x1.8", 1.5, true},
		{"0x1p4", 16, true},
		{"-0x1P-1", -0.5, true},
		{" 2", 2, true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"inf", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"INF", math.Inf(1), true},
		{"", 0, false},
		{".", 0, false},
		{"abc", 0, false},
		{"1e", 1, false},
		{"1e+", 1, false},
		{"0x", 0, false},
		{"2.5kg", 2.5, false},
		{"infinit", math.Inf(1), false},
		{"1.5 ", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat_NaN(t *testing.T) {
	for _, input := range []string{"nan", "NaN", "-nan", "nan(0x1)", "nan(abc_1)"} {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseFloat(input)
			require.True(t, ok)
			require.True(t, math.IsNaN(got))
		})
	}

	got, ok := ParseFloat("nan(")
	require.False(t, ok)
	require.True(t, math.IsNaN(got))
}
