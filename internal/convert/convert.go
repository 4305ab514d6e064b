// Package convert translates INI documents to and from JSON, YAML and
// TOML. Only the two levels INI can express are supported: a top-level
// object of sections, each an object of scalar values.
package convert

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/KimNorgaard/go-ini"
)

// Format names a document encoding.
type Format int

const (
	INI Format = iota
	JSON
	YAML
	TOML
)

var (
	// ErrUnknownFormat is returned for unrecognized format names.
	ErrUnknownFormat = errors.New("convert: unknown format")

	// ErrNested is returned when a section value is itself an object or a
	// list.
	ErrNested = errors.New("convert: nested values are not supported")
)

var formatNames = map[string]Format{
	"ini":  INI,
	"i":    INI,
	"json": JSON,
	"j":    JSON,
	"yaml": YAML,
	"yml":  YAML,
	"y":    YAML,
	"toml": TOML,
	"t":    TOML,
}

func (f Format) String() string {
	switch f {
	case INI:
		return "ini"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format called s. Single letter abbreviations are
// accepted.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf guesses the format of path from its extension.
func FormatOf(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || len(ext) == 1 {
		return 0, false
	}
	f, ok := formatNames[strings.ToLower(ext)]
	return f, ok
}

// Encode writes doc to w in format f. Field values are always written as
// strings.
func Encode(w io.Writer, doc *ini.Document, f Format) error {
	var (
		out []byte
		err error
	)
	switch f {
	case INI:
		return doc.Encode(w)
	case JSON:
		out, err = yaml.MarshalWithOptions(orderedSlice(doc), yaml.JSON())
	case YAML:
		out, err = yaml.Marshal(orderedSlice(doc))
	case TOML:
		out, err = toml.Marshal(doc.Map())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("convert: encode %s: %w", f, err)
	}
	_, err = w.Write(out)
	return err
}

func orderedSlice(doc *ini.Document) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, doc.Len())
	for name, s := range doc.All() {
		fields := make(yaml.MapSlice, 0, s.Len())
		for key, f := range s.All() {
			fields = append(fields, yaml.MapItem{Key: key, Value: f.Text()})
		}
		out = append(out, yaml.MapItem{Key: name, Value: fields})
	}
	return out
}

// Decode reads data in format f into a new document configured by opts.
// JSON and YAML keep the order of their objects; TOML tables are read in
// sorted order.
func Decode(data []byte, f Format, opts ...ini.Option) (*ini.Document, error) {
	if f == INI {
		return ini.Parse(data, opts...)
	}
	doc, err := ini.NewDocument(opts...)
	if err != nil {
		return nil, err
	}

	switch f {
	case JSON, YAML:
		var v any
		if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("convert: decode %s: %w", f, err)
		}
		if v == nil {
			return doc, nil
		}
		top, ok := v.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("convert: decode %s: top level is %T: %w", f, v, ini.ErrFieldWithoutSection)
		}
		for _, item := range top {
			if err := addSection(doc, fmt.Sprint(item.Key), item.Value); err != nil {
				return nil, err
			}
		}
	case TOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("convert: decode %s: %w", f, err)
		}
		for _, name := range slices.Sorted(maps.Keys(m)) {
			if err := addSection(doc, name, m[name]); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return doc, nil
}

func addSection(doc *ini.Document, name string, v any) error {
	if name == "" {
		return fmt.Errorf("convert: %w", ini.ErrEmptyName)
	}

	var fields []field
	switch v := v.(type) {
	case nil:
	case yaml.MapSlice:
		for _, item := range v {
			fields = append(fields, field{fmt.Sprint(item.Key), item.Value})
		}
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			fields = append(fields, field{key, v[key]})
		}
	default:
		return fmt.Errorf("convert: key %q is not a section: %w", name, ini.ErrFieldWithoutSection)
	}

	s := doc.Section(name)
	for _, f := range fields {
		switch f.value.(type) {
		case nil:
			s.Set(f.key, "")
			continue
		case yaml.MapSlice, map[string]any, []any:
			return fmt.Errorf("%w: %s.%s", ErrNested, name, f.key)
		}
		if err := s.Field(f.key).Set(f.value); err != nil {
			return fmt.Errorf("convert: %s.%s: %w", name, f.key, err)
		}
	}
	return nil
}

type field struct {
	key   string
	value any
}
