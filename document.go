package ini

import (
	"iter"
	"maps"
	"slices"
)

// Document is a decoded INI file: an insertion-ordered set of named
// sections, each an insertion-ordered set of fields.
//
// The zero value is an empty document using DefaultSeparator and
// DefaultComment. A Document is not safe for concurrent use.
type Document struct {
	separator byte
	comment   byte
	names     []string
	sections  map[string]*Section
}

// NewDocument returns an empty document configured by opts.
func NewDocument(opts ...Option) (*Document, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Document{separator: o.separator, comment: o.comment}, nil
}

// Separator returns the field separator character.
func (d *Document) Separator() byte {
	if d.separator == 0 {
		return DefaultSeparator
	}
	return d.separator
}

// CommentChar returns the comment marker character.
func (d *Document) CommentChar() byte {
	if d.comment == 0 {
		return DefaultComment
	}
	return d.comment
}

// SetSeparator changes the field separator used by later decodes and encodes.
func (d *Document) SetSeparator(c byte) error {
	if err := checkMarker(c); err != nil {
		return err
	}
	if c == d.CommentChar() {
		return ErrInvalidMarker
	}
	d.separator = c
	return nil
}

// SetCommentChar changes the comment marker used by later decodes.
func (d *Document) SetCommentChar(c byte) error {
	if err := checkMarker(c); err != nil {
		return err
	}
	if c == d.Separator() {
		return ErrInvalidMarker
	}
	d.comment = c
	return nil
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.names)
}

// Clear removes all sections. The separator and comment marker are kept.
func (d *Document) Clear() {
	d.names = nil
	d.sections = nil
}

// Section returns the section called name, creating it at the end of the
// document if it does not exist. It panics if name is empty.
func (d *Document) Section(name string) *Section {
	if name == "" {
		panic(ErrEmptyName)
	}
	if s, ok := d.sections[name]; ok {
		return s
	}
	if d.sections == nil {
		d.sections = make(map[string]*Section)
	}
	s := &Section{name: name}
	d.sections[name] = s
	d.names = append(d.names, name)
	return s
}

// Lookup returns the section called name if it exists.
func (d *Document) Lookup(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Get returns the field key of section if both exist.
func (d *Document) Get(section, key string) (*Field, bool) {
	s, ok := d.sections[section]
	if !ok {
		return nil, false
	}
	return s.Lookup(key)
}

// Field returns the field key of section, creating the section and the
// field as needed. It panics if section is empty.
func (d *Document) Field(section, key string) *Field {
	return d.Section(section).Field(key)
}

// Set stores value as the text of key in section, creating both as needed.
func (d *Document) Set(section, key, value string) error {
	if section == "" {
		return ErrEmptyName
	}
	d.Section(section).Set(key, value)
	return nil
}

// DeleteSection removes the section called name and reports whether it
// existed.
func (d *Document) DeleteSection(name string) bool {
	if _, ok := d.sections[name]; !ok {
		return false
	}
	delete(d.sections, name)
	d.names = slices.DeleteFunc(d.names, func(n string) bool { return n == name })
	return true
}

// SectionNames returns the section names in document order.
func (d *Document) SectionNames() []string {
	return slices.Clone(d.names)
}

// Sections returns the sections in document order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, 0, len(d.names))
	for _, name := range d.names {
		out = append(out, d.sections[name])
	}
	return out
}

// All iterates over the sections in document order.
func (d *Document) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		for _, name := range d.names {
			if !yield(name, d.sections[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the document's text as nested maps.
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.names))
	for name, s := range d.All() {
		out[name] = s.Map()
	}
	return out
}

// Equal reports whether d and other hold the same sections and fields with
// the same text in the same order. The separator and comment marker are
// not compared.
func (d *Document) Equal(other *Document) bool {
	if !slices.Equal(d.names, other.names) {
		return false
	}
	for _, name := range d.names {
		if !d.sections[name].Equal(other.sections[name]) {
			return false
		}
	}
	return true
}

// Section is a named, insertion-ordered group of fields.
type Section struct {
	name   string
	keys   []string
	fields map[string]*Field
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of fields.
func (s *Section) Len() int {
	return len(s.keys)
}

// Keys returns the field names in order.
func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// Lookup returns the field called key if it exists.
func (s *Section) Lookup(key string) (*Field, bool) {
	f, ok := s.fields[key]
	return f, ok
}

// Field returns the field called key, appending an empty one if it does
// not exist.
func (s *Section) Field(key string) *Field {
	if f, ok := s.fields[key]; ok {
		return f
	}
	if s.fields == nil {
		s.fields = make(map[string]*Field)
	}
	f := &Field{}
	s.fields[key] = f
	s.keys = append(s.keys, key)
	return f
}

// Set stores value as the text of key. An existing field keeps its position.
func (s *Section) Set(key, value string) {
	s.Field(key).SetText(value)
}

// Delete removes key and reports whether it existed.
func (s *Section) Delete(key string) bool {
	if _, ok := s.fields[key]; !ok {
		return false
	}
	delete(s.fields, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

// All iterates over the fields in order.
func (s *Section) All() iter.Seq2[string, *Field] {
	return func(yield func(string, *Field) bool) {
		for _, key := range s.keys {
			if !yield(key, s.fields[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the section's text keyed by field name.
func (s *Section) Map() map[string]string {
	out := make(map[string]string, len(s.keys))
	for key, f := range s.All() {
		out[key] = f.raw
	}
	return out
}

// Equal reports whether s and other hold the same fields in the same order.
func (s *Section) Equal(other *Section) bool {
	if other == nil || s.name != other.name || !slices.Equal(s.keys, other.keys) {
		return false
	}
	return maps.EqualFunc(s.fields, other.fields, func(a, b *Field) bool {
		return a.raw == b.raw
	})
}
