package ini

import "fmt"

const (
	// DefaultSeparator separates field names from values.
	DefaultSeparator = '='
	// DefaultComment starts a comment line.
	DefaultComment = '#'
)

// Option configures documents, decoders and encoders.
type Option func(*options) error

type options struct {
	separator byte
	comment   byte
}

func defaultOptions() options {
	return options{separator: DefaultSeparator, comment: DefaultComment}
}

func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	if o.separator == o.comment {
		return o, fmt.Errorf("%w: separator and comment are both %q", ErrInvalidMarker, o.separator)
	}
	return o, nil
}

// Separator returns an Option that sets the character separating a field
// name from its value.
func Separator(c byte) Option {
	return func(o *options) error {
		if err := checkMarker(c); err != nil {
			return err
		}
		o.separator = c
		return nil
	}
}

// CommentChar returns an Option that sets the character starting a comment
// line.
func CommentChar(c byte) Option {
	return func(o *options) error {
		if err := checkMarker(c); err != nil {
			return err
		}
		o.comment = c
		return nil
	}
}

// checkMarker rejects characters that would be trimmed away, split lines,
// or collide with section headers.
func checkMarker(c byte) error {
	switch c {
	case 0, ' ', '\t', '\r', '\n', '[':
		return fmt.Errorf("%w: %q", ErrInvalidMarker, c)
	}
	return nil
}
