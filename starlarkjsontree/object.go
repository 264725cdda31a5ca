package starlarkjsontree

import (
	"strings"

	"github.com/alxarch/jsontree"
	"go.starlark.net/starlark"
)

var _ starlark.Value = (*Object)(nil)
var _ starlark.IterableMapping = (*Object)(nil)
var _ starlark.Sequence = (*Object)(nil)
var _ starlark.HasAttrs = (*Object)(nil)

// Object wraps a parsed JSON object as a read-only Starlark mapping.
// Iteration follows key insertion order.
type Object struct {
	obj *jsontree.Object
}

func (o *Object) Get(key starlark.Value) (starlark.Value, bool, error) {
	k, ok := key.(starlark.String)
	if !ok {
		return nil, false, TypeError("object keys are strings")
	}
	if v, ok := o.obj.Get(string(k)); ok {
		return Value(v), true, nil
	}
	return nil, false, nil
}

func (o *Object) Items() []starlark.Tuple {
	items := make([]starlark.Tuple, o.obj.Len())
	for i := range items {
		kv := o.obj.At(i)
		items[i] = starlark.Tuple{starlark.String(kv.Key), Value(kv.Value)}
	}
	return items
}

func (o *Object) Iterate() starlark.Iterator {
	return &keyIterator{obj: o.obj}
}

func (o *Object) Len() int {
	return o.obj.Len()
}

func (o *Object) Attr(name string) (starlark.Value, error) {
	return objectMethods.Get(name, o)
}

func (o *Object) AttrNames() []string {
	return objectMethods.Names()
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < o.obj.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		kv := o.obj.At(i)
		b.WriteString(starlark.String(kv.Key).String())
		b.WriteString(": ")
		b.WriteString(Value(kv.Value).String())
	}
	b.WriteByte('}')
	return b.String()
}

func (o *Object) Type() string {
	return "jsontree_object"
}

// Freeze is a no-op, parsed trees are immutable.
func (o *Object) Freeze() {}

func (o *Object) Truth() starlark.Bool {
	return o.obj.Len() != 0
}

func (o *Object) Hash() (uint32, error) {
	return 0, TypeError("jsontree_object is not hashable")
}

type keyIterator struct {
	obj *jsontree.Object
	i   int
}

func (it *keyIterator) Next(p *starlark.Value) bool {
	if it.i < it.obj.Len() {
		*p = starlark.String(it.obj.At(it.i).Key)
		it.i++
		return true
	}
	return false
}

func (it *keyIterator) Done() {}

var objectMethods = newProto(map[string]*starlark.Builtin{
	"get":    starlark.NewBuiltin("get", objectGet),
	"keys":   starlark.NewBuiltin("keys", objectKeys),
	"values": starlark.NewBuiltin("values", objectValues),
	"items":  starlark.NewBuiltin("items", objectItems),
})

func objectGet(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var key string
	var fallback starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &key, &fallback); err != nil {
		return nil, err
	}
	o := fn.Receiver().(*Object)
	if v, ok := o.obj.Get(key); ok {
		return Value(v), nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return starlark.None, nil
}

func objectKeys(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	o := fn.Receiver().(*Object)
	keys := make([]starlark.Value, o.obj.Len())
	for i := range keys {
		keys[i] = starlark.String(o.obj.At(i).Key)
	}
	return starlark.NewList(keys), nil
}

func objectValues(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	o := fn.Receiver().(*Object)
	values := make([]starlark.Value, o.obj.Len())
	for i := range values {
		values[i] = Value(o.obj.At(i).Value)
	}
	return starlark.NewList(values), nil
}

func objectItems(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	o := fn.Receiver().(*Object)
	items := o.Items()
	values := make([]starlark.Value, len(items))
	for i := range items {
		values[i] = items[i]
	}
	return starlark.NewList(values), nil
}
