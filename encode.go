package ini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Encoder writes INI documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the INI encoding of v to the stream. A *Document is written
// with its own separator; any other value is first converted as described
// for Marshal using the encoder's options.
func (e *Encoder) Encode(v any) error {
	if doc, ok := v.(*Document); ok {
		return doc.Encode(e.w)
	}
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}
	doc := &Document{separator: o.separator, comment: o.comment}
	if err := unbind(doc, v); err != nil {
		return err
	}
	return doc.Encode(e.w)
}

// WriteTo writes the document to w. Every section is written as a "[name]"
// line followed by one "name=value" line per field, in document order.
// Names and values are written verbatim, so a value containing the
// separator or a name starting with the comment marker does not survive a
// round trip.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	sep := string(d.Separator())
	var n int64
	write := func(parts ...string) error {
		for _, p := range parts {
			m, err := bw.WriteString(p)
			n += int64(m)
			if err != nil {
				return err
			}
		}
		return nil
	}

	for name, s := range d.All() {
		if err := write("[", name, "]\n"); err != nil {
			return n, err
		}
		for key, f := range s.All() {
			if err := write(key, sep, f.raw, "\n"); err != nil {
				return n, err
			}
		}
	}
	return n, bw.Flush()
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer) error {
	_, err := d.WriteTo(w)
	return err
}

// EncodeToString returns the encoded document.
func (d *Document) EncodeToString() string {
	var sb strings.Builder
	// A strings.Builder never fails.
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// Save writes the encoded document to the file at path, creating or
// truncating it.
func (d *Document) Save(path string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("ini: save: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	n, err := d.WriteTo(f)
	if err != nil {
		return fmt.Errorf("ini: save: %w", err)
	}
	Logger().Debug("ini file saved", zap.String("path", path), zap.Int64("bytes", n))
	return nil
}
