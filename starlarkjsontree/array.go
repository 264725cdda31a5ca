package starlarkjsontree

import (
	"strings"

	"github.com/alxarch/jsontree"
	"go.starlark.net/starlark"
)

var _ starlark.Value = (*Array)(nil)
var _ starlark.Sequence = (*Array)(nil)
var _ starlark.Indexable = (*Array)(nil)

// Array wraps a parsed JSON array as a read-only Starlark sequence.
type Array struct {
	arr jsontree.Array
}

func (a *Array) Index(i int) starlark.Value {
	if v := Value(a.arr[i]); v != nil {
		return v
	}
	return starlark.None
}

func (a *Array) Len() int {
	return len(a.arr)
}

func (a *Array) Iterate() starlark.Iterator {
	return &arrayIterator{arr: a.arr}
}

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.arr {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Value(v).String())
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) Type() string {
	return "jsontree_array"
}

// Freeze is a no-op, parsed trees are immutable.
func (a *Array) Freeze() {}

func (a *Array) Truth() starlark.Bool {
	return len(a.arr) != 0
}

func (a *Array) Hash() (uint32, error) {
	return 0, TypeError("jsontree_array is not hashable")
}

type arrayIterator struct {
	arr jsontree.Array
	i   int
}

func (it *arrayIterator) Next(p *starlark.Value) bool {
	if it.i < len(it.arr) {
		*p = Value(it.arr[it.i])
		it.i++
		return true
	}
	return false
}

func (it *arrayIterator) Done() {}
