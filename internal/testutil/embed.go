// Package testutil gives tests access to shared INI fixtures.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"
)

//go:embed testdata/*.ini
var fixtures embed.FS

// ReadTestData returns the contents of the fixture called name.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(fixtures, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixture is like ReadTestData but fails tb when the fixture is missing.
func Fixture(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	return data
}
