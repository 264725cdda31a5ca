// Package jsontree parses JSON text into an immutable in-memory tree.
//
// The parser consumes a prefix of its input and returns the parsed value
// along with the unconsumed remainder, so callers decide whether a parse
// must consume the whole document.
//
// String values are sliced verbatim out of the source text. Escape
// sequences are not decoded; a backslash is an ordinary character and a
// quote can therefore never appear inside a string payload.
package jsontree

// Value is a single node of a parsed JSON tree.
//
// The set of implementations is closed: *Object, Array, String, Number,
// Boolean and Null are the only variants.
type Value interface {
	// Type returns the JSON type of the value.
	Type() Type

	sealed()
}

// String is a string value sliced verbatim from the source text between
// two quote characters, with no escape decoding.
type String string

// Number is a numeric value stored as a 64-bit float.
type Number float64

// Boolean is a true or false value.
type Boolean bool

// Null is the null value.
type Null struct{}

// Array is an ordered sequence of values.
// Element order matches the left-to-right order of the source text.
type Array []Value

func (String) Type() Type  { return TypeString }
func (Number) Type() Type  { return TypeNumber }
func (Boolean) Type() Type { return TypeBoolean }
func (Null) Type() Type    { return TypeNull }
func (Array) Type() Type   { return TypeArray }

func (String) sealed()  {}
func (Number) sealed()  {}
func (Boolean) sealed() {}
func (Null) sealed()    {}
func (Array) sealed()   {}

// Equal reports whether two tree values are structurally equal.
// Objects are equal when they hold equal members in the same order.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Null:
		_, ok := b.(Null)
		return ok
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Object:
		b, ok := b.(*Object)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			ka, kb := a.At(i), b.At(i)
			if ka.Key != kb.Key || !Equal(ka.Value, kb.Value) {
				return false
			}
		}
		return true
	}
	return false
}
