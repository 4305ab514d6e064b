package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/KimNorgaard/go-ini/internal/token"
)

// Lexer holds the state for classifying the lines of INI source.
type Lexer struct {
	r       *bufio.Reader
	sep     byte
	comment byte
	line    int
	err     error
	done    bool
}

// New creates and returns a new Lexer reading from r. Fields are split on
// sep and lines starting with comment are reported as COMMENT tokens.
func New(r io.Reader, sep, comment byte) *Lexer {
	return &Lexer{
		r:       bufio.NewReader(r),
		sep:     sep,
		comment: comment,
	}
}

// Err returns the first non-EOF error that was encountered while reading.
func (l *Lexer) Err() error {
	return l.err
}

// Line returns the number of the last line read.
func (l *Lexer) Line() int {
	return l.line
}

// NextToken reads lines until it finds one that is not blank and returns it
// classified. At the end of input, or after a read error, it returns EOF.
func (l *Lexer) NextToken() token.Token {
	for {
		raw, ok := l.readLine()
		if !ok {
			return token.Token{Type: token.EOF, Line: l.line}
		}
		line := Trim(raw)
		if line == "" {
			continue
		}

		tok := token.Token{Literal: line, Line: l.line}
		switch {
		case line[0] == l.comment:
			tok.Type = token.COMMENT
		case line[0] == '[':
			l.readSection(&tok)
		default:
			l.readField(&tok)
		}
		return tok
	}
}

func (l *Lexer) readSection(tok *token.Token) {
	line := tok.Literal
	pos := strings.IndexByte(line, ']')
	switch {
	case pos < 0:
		tok.Type = token.ILLEGAL
		tok.Reason = token.UnclosedSection
	case pos == 1:
		tok.Type = token.ILLEGAL
		tok.Reason = token.EmptySection
	case pos+1 != len(line):
		tok.Type = token.ILLEGAL
		tok.Reason = token.TrailingText
	default:
		tok.Type = token.SECTION
		tok.Key = line[1:pos]
	}
}

func (l *Lexer) readField(tok *token.Token) {
	line := tok.Literal
	name, value, found := strings.Cut(line, string(l.sep))
	if !found {
		tok.Type = token.TEXT
		return
	}
	tok.Type = token.FIELD
	tok.Key = Trim(name)
	tok.Value = Trim(value)
}

// readLine returns the next line without its terminator. A line ending in
// "\r\n" loses both characters.
func (l *Lexer) readLine() (string, bool) {
	if l.done {
		return "", false
	}
	s, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
		}
		if s == "" {
			return "", false
		}
	}
	l.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

// Trim removes leading and trailing spaces and tabs.
func Trim(s string) string {
	return strings.Trim(s, " \t")
}
