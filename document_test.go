package ini_test

import (
	"errors"
	"testing"

	"github.com/KimNorgaard/go-ini"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDocument_ZeroValue(t *testing.T) {
	var doc ini.Document
	require.Equal(t, byte('='), doc.Separator())
	require.Equal(t, byte('#'), doc.CommentChar())
	require.Zero(t, doc.Len())
	require.Empty(t, doc.EncodeToString())

	doc.Field("a", "b").SetInt(1)
	require.Equal(t, "[a]\nb=1\n", doc.EncodeToString())
}

func TestDocument_Order(t *testing.T) {
	var doc ini.Document
	require.NoError(t, doc.Set("zeta", "b", "2"))
	require.NoError(t, doc.Set("alpha", "x", "1"))
	require.NoError(t, doc.Set("zeta", "a", "1"))
	require.NoError(t, doc.Set("zeta", "b", "3"))

	require.Equal(t, []string{"zeta", "alpha"}, doc.SectionNames())

	zeta, ok := doc.Lookup("zeta")
	require.True(t, ok)
	require.Equal(t, []string{"b", "a"}, zeta.Keys(), "overwriting keeps the original position")
	require.Equal(t, 2, zeta.Len())

	want := "[zeta]\nb=3\na=1\n[alpha]\nx=1\n"
	if diff := cmp.Diff(want, doc.EncodeToString()); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_GetAndLookup(t *testing.T) {
	doc, err := ini.Parse([]byte("[s]\nk = v\n"))
	require.NoError(t, err)

	f, ok := doc.Get("s", "k")
	require.True(t, ok)
	require.Equal(t, "v", f.Text())

	_, ok = doc.Get("s", "missing")
	require.False(t, ok)
	_, ok = doc.Get("missing", "k")
	require.False(t, ok)
	_, ok = doc.Lookup("missing")
	require.False(t, ok)
	require.Equal(t, 1, doc.Len(), "lookups never create sections")
}

func TestDocument_Delete(t *testing.T) {
	doc, err := ini.Parse([]byte("[a]\nx=1\ny=2\n[b]\nz=3\n[c]\n"))
	require.NoError(t, err)

	require.True(t, doc.DeleteSection("b"))
	require.False(t, doc.DeleteSection("b"))
	require.Equal(t, []string{"a", "c"}, doc.SectionNames())

	a, _ := doc.Lookup("a")
	require.True(t, a.Delete("x"))
	require.False(t, a.Delete("x"))
	require.Equal(t, []string{"y"}, a.Keys())

	require.Equal(t, "[a]\ny=2\n[c]\n", doc.EncodeToString())
}

func TestDocument_EmptySectionName(t *testing.T) {
	var doc ini.Document
	err := doc.Set("", "k", "v")
	require.True(t, errors.Is(err, ini.ErrEmptyName))
	require.PanicsWithValue(t, ini.ErrEmptyName, func() { doc.Section("") })
}

func TestDocument_MapAndIteration(t *testing.T) {
	doc, err := ini.Parse([]byte("[b]\nk=1\n[a]\nk=2\nj=3\n"))
	require.NoError(t, err)

	want := map[string]map[string]string{
		"b": {"k": "1"},
		"a": {"k": "2", "j": "3"},
	}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}

	var names []string
	for name, s := range doc.All() {
		names = append(names, name)
		require.Equal(t, name, s.Name())
	}
	require.Equal(t, []string{"b", "a"}, names)

	var keys []string
	for _, s := range doc.Sections() {
		for key := range s.All() {
			keys = append(keys, s.Name()+"."+key)
		}
	}
	require.Equal(t, []string{"b.k", "a.k", "a.j"}, keys)
}

func TestDocument_Equal(t *testing.T) {
	a, err := ini.Parse([]byte("[s]\nx=1\ny=2\n"))
	require.NoError(t, err)
	b, err := ini.Parse([]byte("[s]\n  x = 1\n\n# c\ny=2"), ini.CommentChar('#'))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := ini.Parse([]byte("[s]\ny=2\nx=1\n"))
	require.NoError(t, err)
	require.False(t, a.Equal(c), "field order matters")

	b.Field("s", "y").SetText("3")
	require.False(t, a.Equal(b))
}

func TestDocument_Markers(t *testing.T) {
	doc, err := ini.NewDocument(ini.Separator(':'), ini.CommentChar(';'))
	require.NoError(t, err)
	require.Equal(t, byte(':'), doc.Separator())
	require.Equal(t, byte(';'), doc.CommentChar())

	require.ErrorIs(t, doc.SetSeparator(';'), ini.ErrInvalidMarker)
	require.ErrorIs(t, doc.SetCommentChar(':'), ini.ErrInvalidMarker)
	require.ErrorIs(t, doc.SetSeparator(' '), ini.ErrInvalidMarker)
	require.ErrorIs(t, doc.SetCommentChar('['), ini.ErrInvalidMarker)

	require.NoError(t, doc.SetSeparator('='))
	require.Equal(t, byte('='), doc.Separator())

	_, err = ini.NewDocument(ini.Separator('#'))
	require.ErrorIs(t, err, ini.ErrInvalidMarker)
	_, err = ini.NewDocument(ini.CommentChar('\n'))
	require.ErrorIs(t, err, ini.ErrInvalidMarker)
}
