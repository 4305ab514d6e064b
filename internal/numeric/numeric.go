// Package numeric parses numbers the way the C library's strtol, strtoul
// and strtod do: the longest valid prefix is converted and the caller is
// told whether anything was left over.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses s as a signed integer literal with base detection
// (0x for hex, a leading 0 for octal). Values beyond the int64 range
// saturate. ok is false if s is empty, contains no digits, or has
// characters after the longest valid prefix.
func ParseInt(s string) (v int64, ok bool) {
	neg, mag, overflow, end := scanInteger(s)
	ok = end > 0 && end == len(s)
	switch {
	case neg && (overflow || mag > 1<<63):
		return math.MinInt64, ok
	case neg:
		return int64(-mag), ok
	case overflow || mag > math.MaxInt64:
		return math.MaxInt64, ok
	default:
		return int64(mag), ok
	}
}

// ParseUint parses s as an unsigned integer literal. Like strtoul, a
// negative literal is converted and negated modulo 2^64, but the result is
// reported as not ok. Values beyond the uint64 range saturate.
func ParseUint(s string) (v uint64, ok bool) {
	neg, mag, overflow, end := scanInteger(s)
	ok = end > 0 && end == len(s) && !neg
	switch {
	case overflow:
		return math.MaxUint64, ok
	case neg:
		return -mag, ok
	default:
		return mag, ok
	}
}

// ParseFloat parses s as a floating point literal: decimal with an
// optional exponent, hexadecimal with an optional binary exponent, or one
// of inf, infinity and nan in any case. Overflow yields ±Inf.
func ParseFloat(s string) (v float64, ok bool) {
	neg, lit, end := scanFloat(s)
	if end == 0 {
		return 0, false
	}
	ok = end == len(s)

	switch strings.ToLower(lit) {
	case "inf", "infinity":
		v = math.Inf(1)
	case "nan":
		v = math.NaN()
	default:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			// Only range errors can occur here; f already holds ±Inf or 0.
			if ne, isNum := err.(*strconv.NumError); !isNum || ne.Err != strconv.ErrRange {
				return 0, false
			}
		}
		v = f
	}
	if neg {
		v = -v
	}
	return v, ok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isHexDigit(c byte) bool { return digitVal(c) < 16 }

// skipSign skips leading whitespace and an optional sign.
func skipSign(s string) (i int, neg bool) {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	return i, neg
}

// scanInteger returns the magnitude of the longest integer prefix of s and
// the index just past it. end is 0 if no digits were found.
func scanInteger(s string) (neg bool, mag uint64, overflow bool, end int) {
	i, neg := skipSign(s)

	base := uint64(10)
	switch {
	case i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && isHexDigit(s[i+2]):
		base = 16
		i += 2
	case i < len(s) && s[i] == '0':
		base = 8
	}

	start := i
	for ; i < len(s); i++ {
		d := uint64(digitVal(s[i]))
		if d >= base {
			break
		}
		if mag > (math.MaxUint64-d)/base {
			overflow = true
			continue
		}
		mag = mag*base + d
	}
	if i == start {
		return false, 0, false, 0
	}
	return neg, mag, overflow, i
}

// scanFloat returns the longest floating point prefix of s without its
// sign, rewritten into a form strconv.ParseFloat accepts.
func scanFloat(s string) (neg bool, lit string, end int) {
	i, neg := skipSign(s)
	rest := strings.ToLower(s[i:])

	switch {
	case strings.HasPrefix(rest, "infinity"):
		return neg, "infinity", i + len("infinity")
	case strings.HasPrefix(rest, "inf"):
		return neg, "inf", i + len("inf")
	case strings.HasPrefix(rest, "nan"):
		return neg, "nan", i + len("nan") + nanPayload(s[i+len("nan"):])
	}

	if strings.HasPrefix(rest, "0x") {
		if lit, n := scanHexFloat(s[i+2:]); n > 0 {
			return neg, lit, i + 2 + n
		}
	}

	n := scanMantissa(s[i:], isDigit)
	if n == 0 {
		return false, "", 0
	}
	n += scanExponent(s[i+n:], 'e', 'E')
	return neg, s[i : i+n], i + n
}

// scanHexFloat scans the part of a hex float after the 0x prefix.
func scanHexFloat(s string) (string, int) {
	n := scanMantissa(s, isHexDigit)
	if n == 0 {
		return "", 0
	}
	e := scanExponent(s[n:], 'p', 'P')
	if e == 0 {
		return "0x" + s[:n] + "p0", n
	}
	return "0x" + s[:n+e], n + e
}

// scanMantissa returns the length of digits, an optional point and more
// digits, requiring at least one digit overall.
func scanMantissa(s string, digit func(byte) bool) int {
	i, digits := 0, 0
	for i < len(s) && digit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && digit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}

// scanExponent returns the length of an exponent introduced by one of the
// two marker bytes, or 0 if there is no complete exponent.
func scanExponent(s string, lower, upper byte) int {
	if len(s) == 0 || (s[0] != lower && s[0] != upper) {
		return 0
	}
	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// nanPayload returns the length of an optional "(chars)" suffix after nan.
func nanPayload(s string) int {
	if len(s) == 0 || s[0] != '(' {
		return 0
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ')':
			return i + 1
		case isDigit(c), 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		default:
			return 0
		}
	}
	return 0
}
