package ini_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-ini"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.ini")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			doc, err := ini.Parse(src)
			valid := err == nil
			if !valid {
				// Malformed inputs store the error message.
				actual = []byte(err.Error())
			} else {
				actual = []byte(doc.EncodeToString())
			}

			goldenFile := strings.TrimSuffix(file, ".ini") + ".golden"
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual), "Canonical output does not match golden file.")

			if valid {
				// The canonical form is a fixed point.
				again, err := ini.Parse(actual)
				require.NoError(t, err)
				require.Equal(t, string(actual), again.EncodeToString())
			}
		})
	}
}
