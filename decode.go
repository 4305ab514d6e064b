package ini

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ini/internal/lexer"
	"github.com/KimNorgaard/go-ini/internal/token"
)

// Decoder reads and decodes INI documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
// The Separator and CommentChar options configure the syntax.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and stores it in the value pointed to by v.
// If v is a *Document, the document is cleared and refilled using the
// decoder's options; otherwise the input is decoded into a fresh document
// that is then mapped onto v as described for Unmarshal.
//
// Syntax errors are returned as *DecodeError.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("ini: Decode(nil reader)")
	}
	o, err := applyOptions(d.opts)
	if err != nil {
		return err
	}
	if doc, ok := v.(*Document); ok {
		if doc == nil {
			return fmt.Errorf("ini: Decode(nil *Document)")
		}
		doc.separator, doc.comment = o.separator, o.comment
		return doc.Decode(d.r)
	}

	doc := &Document{separator: o.separator, comment: o.comment}
	if err := doc.Decode(d.r); err != nil {
		return err
	}
	return bind(doc, v)
}

// TryDecode clears d and fills it from r. It never returns an error;
// failures are described by the result. On failure d keeps the sections
// and fields decoded before the offending line.
func (d *Document) TryDecode(r io.Reader) DecodeResult {
	d.Clear()
	sep := d.Separator()
	l := lexer.New(r, sep, d.CommentChar())

	fail := func(kind ErrorKind, line int, cause error) DecodeResult {
		Logger().Debug("ini decode failed",
			zap.Stringer("kind", kind),
			zap.Int("line", line),
			zap.Error(cause))
		return DecodeResult{Kind: kind, Line: line, Cause: cause, separator: sep}
	}

	var current *Section
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.EOF:
			if err := l.Err(); err != nil {
				return fail(ReadFailed, tok.Line, err)
			}
			Logger().Debug("ini document decoded",
				zap.Int("sections", d.Len()),
				zap.Int("lines", tok.Line))
			return DecodeResult{Kind: NoFailure, separator: sep}
		case token.COMMENT:
			continue
		case token.ILLEGAL:
			return fail(illegalKind(tok.Reason), tok.Line, nil)
		case token.SECTION:
			current = d.Section(tok.Key)
		case token.FIELD, token.TEXT:
			if current == nil {
				return fail(FieldWithoutSection, tok.Line, nil)
			}
			if tok.Type == token.TEXT {
				return fail(FieldWithoutSeparator, tok.Line, nil)
			}
			current.Set(tok.Key, tok.Value)
		}
	}
}

func illegalKind(r token.Reason) ErrorKind {
	switch r {
	case token.UnclosedSection:
		return SectionNotClosed
	case token.EmptySection:
		return SectionNameEmpty
	default:
		return SectionTextAfter
	}
}

// Decode is like TryDecode but returns failures as a *DecodeError.
func (d *Document) Decode(r io.Reader) error {
	return d.TryDecode(r).Err()
}

// TryDecodeString is TryDecode reading from s.
func (d *Document) TryDecodeString(s string) DecodeResult {
	return d.TryDecode(strings.NewReader(s))
}

// DecodeString is Decode reading from s.
func (d *Document) DecodeString(s string) error {
	return d.TryDecodeString(s).Err()
}

// TryLoad clears d and fills it from the file at path. A file that cannot
// be opened or read yields a ReadFailed result wrapping the *fs.PathError.
func (d *Document) TryLoad(path string) DecodeResult {
	f, err := os.Open(path)
	if err != nil {
		d.Clear()
		Logger().Debug("ini file not opened", zap.String("path", path), zap.Error(err))
		return DecodeResult{Kind: ReadFailed, Cause: err, separator: d.Separator()}
	}
	defer f.Close()

	res := d.TryDecode(f)
	Logger().Debug("ini file loaded",
		zap.String("path", path),
		zap.Bool("ok", res.OK()))
	return res
}

// Load is like TryLoad but returns failures as a *DecodeError.
func (d *Document) Load(path string) error {
	return d.TryLoad(path).Err()
}
