package jsontree

import (
	"strconv"
	"strings"
)

const (
	delimString         = '"'
	delimBeginObject    = '{'
	delimEndObject      = '}'
	delimBeginArray     = '['
	delimEndArray       = ']'
	delimNameSeparator  = ':'
	delimValueSeparator = ','
)

// DefaultMaxDepth is the nesting depth limit of a zero value Parser.
const DefaultMaxDepth = 4096

// Parser parses JSON text into tree values.
// The zero value is ready to use.
type Parser struct {
	// MaxDepth limits the nesting depth of parsed documents.
	// Inputs nested deeper fail with a *DepthError instead of
	// growing the call stack without bound.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a tree value from a prefix of s.
//
// On success it returns the value and the unconsumed remainder of s.
// Callers that require whole-document semantics must check that the
// remainder is empty. On failure it returns s unconsumed along with a
// *ParseError, *DepthError or UnexpectedEOF describing the mismatch.
func (p *Parser) Parse(s string) (Value, string, error) {
	depth := p.MaxDepth
	if depth == 0 {
		depth = DefaultMaxDepth
	}
	v, tail, err := parseValue(s, depth)
	if err != nil {
		return nil, s, err
	}
	return v, tail, nil
}

// ParseUnsafe parses JSON from a slice of bytes without copying it to a string.
// The contents of the slice should not be modified while using the result values.
func (p *Parser) ParseUnsafe(data []byte) (Value, []byte, error) {
	v, tail, err := p.Parse(b2s(data))
	if err != nil {
		return nil, data, err
	}
	if tail == "" {
		return v, nil, nil
	}
	return v, data[len(data)-len(tail):], nil
}

// Parse parses a tree value from a prefix of s using a zero value Parser.
func Parse(s string) (Value, string, error) {
	p := Parser{}
	return p.Parse(s)
}

// parseValue tries each production in a fixed order and returns the
// first match. The productions are prefix-disjoint so the order only
// affects diagnostics, not which inputs parse.
func parseValue(s string, depth int) (Value, string, error) {
	if s == "" {
		return nil, s, eof(TypeAnyValue)
	}
	if depth <= 0 {
		return nil, s, &DepthError{input: s}
	}
	depth--
	v, tail, err := parseObject(s, depth)
	if err == nil {
		return v, tail, nil
	}
	best := err
	if v, tail, err = parseArray(s, depth); err == nil {
		return v, tail, nil
	}
	best = bestError(best, err, s)
	if v, tail, err = parseNumber(s); err == nil {
		return v, tail, nil
	}
	best = bestError(best, err, s)
	if v, tail, err = parseString(s); err == nil {
		return v, tail, nil
	}
	best = bestError(best, err, s)
	if v, tail, err = parseBoolean(s); err == nil {
		return v, tail, nil
	}
	best = bestError(best, err, s)
	if v, tail, err = parseNull(s); err == nil {
		return v, tail, nil
	}
	best = bestError(best, err, s)
	if len(errInput(best, s)) == len(s) {
		// No production consumed anything.
		return nil, s, abort(TypeAnyValue, s, token(s), "any value")
	}
	return nil, s, best
}

func parseObject(s string, depth int) (Value, string, error) {
	if s == "" {
		return nil, s, eof(TypeObject)
	}
	if s[0] != delimBeginObject {
		return nil, s, abort(TypeObject, s, token(s), `"{"`)
	}
	obj := new(Object)
	tail := s[1:]
	// An empty object closes immediately after the opening brace.
	if tail != "" && tail[0] == delimEndObject {
		return obj, tail[1:], nil
	}
	for first := true; ; first = false {
		t := skipSpace(tail)
		if t == "" {
			return nil, s, eof(TypeObject)
		}
		if t[0] != delimString {
			if first {
				return nil, s, abort(TypeObject, t, token(t), `"}" or "\""`)
			}
			return nil, s, abort(TypeObject, t, token(t), `"\""`)
		}
		key, t, err := parseStringInner(t)
		if err != nil {
			return nil, s, err
		}
		t = skipSpace(t)
		if t == "" {
			return nil, s, eof(TypeObject)
		}
		if t[0] != delimNameSeparator {
			return nil, s, abort(TypeObject, t, token(t), `":"`)
		}
		v, t, err := parseValue(skipSpace(t[1:]), depth)
		if err != nil {
			return nil, s, err
		}
		obj.set(key, v)
		t = skipSpace(t)
		if t == "" {
			return nil, s, eof(TypeObject)
		}
		switch t[0] {
		case delimValueSeparator:
			tail = t[1:]
		case delimEndObject:
			return obj, t[1:], nil
		default:
			return nil, s, abort(TypeObject, t, token(t), `"," or "}"`)
		}
	}
}

func parseArray(s string, depth int) (Value, string, error) {
	if s == "" {
		return nil, s, eof(TypeArray)
	}
	if s[0] != delimBeginArray {
		return nil, s, abort(TypeArray, s, token(s), `"["`)
	}
	arr := Array{}
	tail := s[1:]
	if tail == "" {
		return nil, s, eof(TypeArray)
	}
	// An empty array closes immediately after the opening bracket.
	if tail[0] == delimEndArray {
		return arr, tail[1:], nil
	}
	for {
		v, t, err := parseValue(tail, depth)
		if err != nil {
			return nil, s, err
		}
		arr = append(arr, v)
		// Whitespace is allowed around the separator only, never
		// between an element and the closing bracket.
		if ws := skipSpace(t); ws != "" && ws[0] == delimValueSeparator {
			tail = skipSpace(ws[1:])
			continue
		}
		if t == "" {
			return nil, s, eof(TypeArray)
		}
		if t[0] == delimEndArray {
			return arr, t[1:], nil
		}
		return nil, s, abort(TypeArray, t, token(t), `"," or "]"`)
	}
}

func parseNumber(s string) (Value, string, error) {
	lit, tail := scanNumber(s)
	if lit == "" {
		return nil, s, abort(TypeNumber, s, token(s), "a number")
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Out of range values saturate to an infinity, which the
		// grammar permits. Anything else cannot happen for a
		// scanned literal.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return nil, s, abort(TypeNumber, s, lit, "a number")
		}
	}
	return Number(f), tail, nil
}

// scanNumber splits s into its longest numeric prefix and the rest.
// The grammar is an optional sign, an integer part, an optional
// fraction and an optional exponent. A fraction without an integer
// part (".14") is accepted, a lone sign or dot is not.
func scanNumber(s string) (string, string) {
	tail := s
	if tail != "" && (tail[0] == '-' || tail[0] == '+') {
		tail = tail[1:]
	}
	num, t := readDigits(tail)
	switch {
	case num != "":
		tail = t
		if tail != "" && tail[0] == '.' {
			_, tail = readDigits(tail[1:])
		}
	case tail != "" && tail[0] == '.':
		frac, t := readDigits(tail[1:])
		if frac == "" {
			return "", s
		}
		tail = t
	default:
		return "", s
	}
	if tail != "" && (tail[0] == 'e' || tail[0] == 'E') {
		t := tail[1:]
		if t != "" && (t[0] == '-' || t[0] == '+') {
			t = t[1:]
		}
		if exp, t := readDigits(t); exp != "" {
			tail = t
		}
	}
	return s[:len(s)-len(tail)], tail
}

// parseStringInner parses a quoted string and returns its raw content.
// The content is the verbatim text up to the next quote. There is no
// escape mechanism, so a quote can never be part of the payload.
func parseStringInner(s string) (string, string, error) {
	if s == "" {
		return "", s, eof(TypeString)
	}
	if s[0] != delimString {
		return "", s, abort(TypeString, s, token(s), `"\""`)
	}
	tail := s[1:]
	i := strings.IndexByte(tail, delimString)
	if i < 0 {
		return "", s, eof(TypeString)
	}
	return tail[:i], tail[i+1:], nil
}

// parseString parses a quoted string and wraps it into a String value.
func parseString(s string) (Value, string, error) {
	raw, tail, err := parseStringInner(s)
	if err != nil {
		return nil, s, err
	}
	return String(raw), tail, nil
}

func parseBoolean(s string) (Value, string, error) {
	if s == "" {
		return nil, s, eof(TypeBoolean)
	}
	switch s[0] {
	case 't':
		if len(s) < len(strTrue) {
			return nil, s, eof(TypeBoolean)
		}
		if s[:len(strTrue)] == strTrue {
			return Boolean(true), s[len(strTrue):], nil
		}
	case 'f':
		if len(s) < len(strFalse) {
			return nil, s, eof(TypeBoolean)
		}
		if s[:len(strFalse)] == strFalse {
			return Boolean(false), s[len(strFalse):], nil
		}
	}
	return nil, s, abort(TypeBoolean, s, token(s), `"true" or "false"`)
}

func parseNull(s string) (Value, string, error) {
	if s == "" {
		return nil, s, eof(TypeNull)
	}
	if s[0] == 'n' {
		if len(s) < len(strNull) {
			return nil, s, eof(TypeNull)
		}
		if s[:len(strNull)] == strNull {
			return Null{}, s[len(strNull):], nil
		}
	}
	return nil, s, abort(TypeNull, s, token(s), `"null"`)
}

// token returns a short prefix of s for error messages.
func token(s string) string {
	const max = 8
	if len(s) > max {
		return s[:max]
	}
	return s
}
