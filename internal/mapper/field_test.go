package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type embedded struct {
	Shared string `ini:"shared"`
}

type sample struct {
	embedded
	Host     string `ini:"host"`
	Port     int    `ini:"port,omitempty"`
	Debug    bool
	Skipped  string `ini:"-"`
	internal string
}

func TestFields(t *testing.T) {
	fields := Fields(reflect.TypeOf(sample{}))
	require.Equal(t, []Field{
		{Name: "shared", Index: []int{0, 0}, Tagged: true},
		{Name: "host", Index: []int{1}, Tagged: true},
		{Name: "port", Index: []int{2}, Tagged: true, OmitEmpty: true},
		{Name: "Debug", Index: []int{3}},
	}, fields)

	// A second call is served from the cache.
	require.Equal(t, fields, Fields(reflect.TypeOf(sample{})))
}

func TestMatch(t *testing.T) {
	fields := Fields(reflect.TypeOf(sample{}))

	f, ok := Match(fields, "host")
	require.True(t, ok)
	require.Equal(t, []int{1}, f.Index)

	f, ok = Match(fields, "DEBUG")
	require.True(t, ok)
	require.Equal(t, "Debug", f.Name)

	_, ok = Match(fields, "missing")
	require.False(t, ok)
}

func TestIsEmptyValue(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name  string
		value any
		empty bool
	}{
		{"empty string", "", true},
		{"string", "x", false},
		{"zero int", 0, true},
		{"int", 3, false},
		{"zero uint", uint(0), true},
		{"false", false, true},
		{"true", true, false},
		{"zero float", 0.0, true},
		{"nil pointer", nilPtr, true},
		{"empty map", map[string]string{}, true},
		{"struct", struct{}{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.empty, IsEmptyValue(reflect.ValueOf(tt.value)))
		})
	}
}
