package jsontree

import "fmt"

// ParseError signifies an invalid token in JSON input.
type ParseError struct {
	got   string
	want  string
	input string
	typ   Type
}

// Type returns the type of value that was being parsed when the error occurred.
func (e *ParseError) Type() Type {
	return e.typ
}

// Input returns the unconsumed input suffix at the point of failure.
func (e *ParseError) Input() string {
	return e.input
}

// Offset returns the offset of the failure inside src.
// It returns -1 when the error did not occur while parsing src.
func (e *ParseError) Offset(src string) int {
	if n := len(src) - len(e.input); 0 <= n && n <= len(src) && src[n:] == e.input {
		return n
	}
	return -1
}

func (e *ParseError) Error() string {
	if e == nil {
		return fmt.Sprintf("%v", error(nil))
	}
	return fmt.Sprintf("invalid token %q, expecting %s while scanning %s", e.got, e.want, e.typ)
}

// UnexpectedEOF signifies incomplete JSON data
type UnexpectedEOF Type

func (e UnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected end of input while scanning %s", Type(e).String())
}

// DepthError signifies input nested deeper than a Parser's MaxDepth.
type DepthError struct {
	input string
}

// Input returns the unconsumed input suffix at the point of failure.
func (e *DepthError) Input() string {
	return e.input
}

func (e *DepthError) Error() string {
	return "maximum nesting depth exceeded"
}

func abort(typ Type, input, got, want string) error {
	return &ParseError{
		typ:   typ,
		input: input,
		got:   got,
		want:  want,
	}
}

func eof(typ Type) error {
	return UnexpectedEOF(typ)
}

// errInput reports the unconsumed suffix an error occurred at.
// Errors that carry no suffix are treated as having consumed all of s.
func errInput(err error, s string) string {
	switch e := err.(type) {
	case *ParseError:
		return e.input
	case *DepthError:
		return e.input
	case UnexpectedEOF:
		return ""
	}
	return s
}

// bestError keeps the most specific of two production failures,
// preferring the one that consumed more input before failing.
func bestError(a, b error, s string) error {
	if a == nil {
		return b
	}
	if len(errInput(b, s)) < len(errInput(a, s)) {
		return b
	}
	return a
}
