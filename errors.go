package ini

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. Decode errors match the sentinel of their kind through
// errors.Is.
var (
	ErrSectionNotClosed      = errors.New("ini: section not closed")
	ErrSectionNameEmpty      = errors.New("ini: section is empty")
	ErrSectionTextAfter      = errors.New("ini: no end of line after section")
	ErrFieldWithoutSection   = errors.New("ini: field has no section")
	ErrFieldWithoutSeparator = errors.New("ini: field without separator")
	ErrRead                  = errors.New("ini: read failed")

	// ErrInvalidValue is matched by every *InvalidValueError.
	ErrInvalidValue = errors.New("ini: invalid value")

	// ErrInvalidMarker is returned for unusable separator or comment characters.
	ErrInvalidMarker = errors.New("ini: invalid marker character")

	// ErrEmptyName is returned when a section name is empty.
	ErrEmptyName = errors.New("ini: empty section name")

	// ErrUnsupportedType is returned when a value cannot be stored in a field.
	ErrUnsupportedType = errors.New("ini: unsupported type")
)

// ErrorKind classifies the outcome of decoding a document.
type ErrorKind int

const (
	NoFailure ErrorKind = iota
	SectionNotClosed
	SectionNameEmpty
	SectionTextAfter
	FieldWithoutSection
	FieldWithoutSeparator
	// ReadFailed reports that the underlying reader or file failed.
	ReadFailed
)

var kindInfo = map[ErrorKind]struct {
	desc     string
	sentinel error
}{
	NoFailure:             {"no failure", nil},
	SectionNotClosed:      {"section not closed", ErrSectionNotClosed},
	SectionNameEmpty:      {"section is empty", ErrSectionNameEmpty},
	SectionTextAfter:      {"no end of line after section", ErrSectionTextAfter},
	FieldWithoutSection:   {"field has no section", ErrFieldWithoutSection},
	FieldWithoutSeparator: {"field without separator", ErrFieldWithoutSeparator},
	ReadFailed:            {"read failed", ErrRead},
}

// String returns a human-readable description of the kind.
func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.desc
	}
	return "unknown failure code " + strconv.Itoa(int(k))
}

// DecodeResult is the outcome of a non-failing decode call. Kind is
// NoFailure on success.
type DecodeResult struct {
	Kind ErrorKind
	// Line is the 1-based line of the offending input, or 0 on success.
	// For ReadFailed it is the last line that was read.
	Line int
	// Cause holds the I/O error for ReadFailed.
	Cause error

	separator byte
}

// OK reports whether decoding succeeded.
func (r DecodeResult) OK() bool {
	return r.Kind == NoFailure
}

// Err converts the result into an error. It returns nil on success and a
// *DecodeError otherwise.
func (r DecodeResult) Err() error {
	if r.OK() {
		return nil
	}
	return &DecodeError{Kind: r.Kind, Line: r.Line, Separator: r.separator, Err: r.Cause}
}

// DecodeError describes the first malformed line of a document.
type DecodeError struct {
	Kind      ErrorKind
	Line      int
	Separator byte
	Err       error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case FieldWithoutSeparator:
		return fmt.Sprintf("ini: parsing error at line %d: field without separator '%c' found", e.Line, e.Separator)
	case ReadFailed:
		return fmt.Sprintf("ini: read error after line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("ini: parsing error at line %d: %s", e.Line, e.Kind)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel error of e's kind.
func (e *DecodeError) Is(target error) bool {
	info, ok := kindInfo[e.Kind]
	return ok && info.sentinel != nil && target == info.sentinel
}

// InvalidValueError is returned by Conversion.Checked when a field's text
// cannot be read as the requested type.
type InvalidValueError struct {
	Value string
	Type  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("ini: field %q is no %s", e.Value, e.Type)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// A BindError reports a field that could not be mapped to or from a Go value.
type BindError struct {
	Section string
	Key     string
	Err     error
}

func (e *BindError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ini: section %q: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("ini: section %q key %q: %v", e.Section, e.Key, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }
