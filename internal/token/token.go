package token

// Type is the type of a token.
type Type string

// Token represents a single classified line of INI source.
type Token struct {
	Type    Type
	Literal string // the trimmed line
	Key     string // section name for SECTION, field name for FIELD
	Value   string // field value for FIELD
	Reason  Reason // why an ILLEGAL line was rejected
	Line    int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A malformed section header
	EOF     Type = "EOF"     // End of input

	// Lines
	SECTION Type = "SECTION" // [name]
	FIELD   Type = "FIELD"   // key=value
	TEXT    Type = "TEXT"    // a non-empty line without a separator
	COMMENT Type = "COMMENT" // # a comment
)

// Reason describes why a line was classified as ILLEGAL.
type Reason int

const (
	NoReason Reason = iota
	UnclosedSection
	EmptySection
	TrailingText
)

var reasonNames = map[Reason]string{
	NoReason:        "none",
	UnclosedSection: "unclosed section",
	EmptySection:    "empty section",
	TrailingText:    "text after section",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}
