package ini_test

import (
	"testing"

	"github.com/KimNorgaard/go-ini"
	"github.com/stretchr/testify/require"
)

// TestMarshal_OmitEmpty tests the functionality of the ",omitempty" struct tag.
func TestMarshal_OmitEmpty(t *testing.T) {
	type Section struct {
		String  string            `ini:"string,omitempty"`
		Int     int               `ini:"int,omitempty"`
		Float   float64           `ini:"float,omitempty"`
		Bool    bool              `ini:"bool,omitempty"`
		Pointer *int              `ini:"pointer,omitempty"`
		Always  string            `ini:"always"`
		Labels  map[string]string `ini:"labels,omitempty"`
	}
	type Config struct {
		Main   Section           `ini:"main"`
		Extra  *Section          `ini:"extra,omitempty"`
		Labels map[string]string `ini:"labels,omitempty"`
		Plain  map[string]string `ini:"plain"`
	}

	t.Run("zero values are omitted", func(t *testing.T) {
		b, err := ini.Marshal(Config{})
		require.NoError(t, err)
		// Fields without omitempty are always written; a nil map is no section.
		require.Equal(t, "[main]\nalways=\n", string(b))
	})

	t.Run("non-zero values are written", func(t *testing.T) {
		n := 0
		v := Config{
			Main: Section{
				String:  "hello",
				Int:     1,
				Float:   3.14,
				Bool:    true,
				Pointer: &n,
			},
			Extra:  &Section{Always: "x"},
			Labels: map[string]string{"k": "v"},
			Plain:  map[string]string{},
		}
		b, err := ini.Marshal(v)
		require.NoError(t, err)
		require.Equal(t,
			"[main]\nstring=hello\nint=1\nfloat=3.14\nbool=true\npointer=0\nalways=\n"+
				"[extra]\nalways=x\n"+
				"[labels]\nk=v\n"+
				"[plain]\n",
			string(b))
	})
}
