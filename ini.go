package ini

import "bytes"

// Marshal returns the INI encoding of v.
//
// v must be a *Document, a struct, or a map with string keys, or a pointer
// to one of those. Each exported field (or map entry) holding a struct or a
// string-keyed map becomes a section; the fields of that value become the
// section's fields. Map keys are written in sorted order. Values other than
// sections at the top level are an error, since INI has no place for them.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the INI-encoded data and stores the result in the value
// pointed to by v.
//
// If v is a *Document the data is decoded into it directly. Otherwise v must
// point to a struct or to a map with string keys. Sections are matched to
// struct fields by their `ini` tag or field name, preferring an exact match
// and falling back to a case-insensitive one; fields are matched within a
// section the same way. Sections and fields without a destination are
// ignored.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// Parse decodes data into a new Document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	doc, err := NewDocument(opts...)
	if err != nil {
		return nil, err
	}
	if err := doc.Decode(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadFile reads and decodes the file at path into a new Document.
func LoadFile(path string, opts ...Option) (*Document, error) {
	doc, err := NewDocument(opts...)
	if err != nil {
		return nil, err
	}
	if err := doc.Load(path); err != nil {
		return nil, err
	}
	return doc, nil
}

// Valid reports whether data is a well-formed INI document.
func Valid(data []byte, opts ...Option) bool {
	_, err := Parse(data, opts...)
	return err == nil
}
