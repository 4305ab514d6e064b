package ini_test

import (
	"errors"
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/KimNorgaard/go-ini"
	"github.com/stretchr/testify/require"
)

func TestField_Setters(t *testing.T) {
	f := ini.NewField("initial")
	require.Equal(t, "initial", f.Text())
	require.Equal(t, "initial", f.String())

	f.SetInt(-42)
	require.Equal(t, "-42", f.Text())

	f.SetUint(math.MaxUint64)
	require.Equal(t, "18446744073709551615", f.Text())

	f.SetFloat(0.1)
	require.Equal(t, "0.1", f.Text())

	f.SetFloat(1e21)
	require.Equal(t, "1e+21", f.Text())

	f.SetFloat32(0.1)
	require.Equal(t, "0.1", f.Text())

	f.SetBool(true)
	require.Equal(t, "true", f.Text())

	f.SetText("  spaced  ")
	require.Equal(t, "  spaced  ", f.Text(), "text is stored verbatim")
}

func TestField_Set(t *testing.T) {
	addr := netip.MustParseAddr("192.0.2.1")

	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", "hello"},
		{"bytes", []byte("raw"), "raw"},
		{"bool", false, "false"},
		{"int", 7, "7"},
		{"int8", int8(-8), "-8"},
		{"int16", int16(1600), "1600"},
		{"int32", int32(math.MinInt32), "-2147483648"},
		{"int64", int64(math.MaxInt64), "9223372036854775807"},
		{"uint", uint(7), "7"},
		{"uint8", uint8(255), "255"},
		{"uint16", uint16(65535), "65535"},
		{"uint32", uint32(math.MaxUint32), "4294967295"},
		{"uint64", uint64(1), "1"},
		{"float32", float32(2.5), "2.5"},
		{"float64", 6.626e-34, "6.626e-34"},
		{"field", ini.NewField("copied"), "copied"},
		{"text marshaler", addr, "192.0.2.1"},
		{"stringer", 90 * time.Second, "1m30s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var f ini.Field
			require.NoError(t, f.Set(tc.value))
			require.Equal(t, tc.want, f.Text())
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		f := ini.NewField("kept")
		err := f.Set([]int{1})
		require.Error(t, err)
		require.True(t, errors.Is(err, ini.ErrUnsupportedType))
		require.Equal(t, "kept", f.Text())
	})
}

func TestField_ReadsDoNotModifyText(t *testing.T) {
	f := ini.NewField("42abc")
	_ = f.Int()
	_ = f.Float()
	_ = f.Bool()
	require.Equal(t, "42abc", f.Text())
}
