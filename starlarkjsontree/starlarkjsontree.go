// Package starlarkjsontree exposes parsed JSON trees to Starlark programs.
package starlarkjsontree

import (
	"errors"
	"strings"

	"github.com/alxarch/jsontree"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Module is a Starlark module providing JSON tree parsing.
//
//	jsontree.parse(text) - parse a whole JSON document
var Module = starlarkstruct.Module{
	Name: "jsontree",
	Members: starlark.StringDict{
		"parse": starlark.NewBuiltin("parse", parse),
	},
}

func parse(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, errors.New("parse does not accept keyword arguments")
	}
	var input string
	if err := starlark.UnpackPositionalArgs("parse", args, kwargs, 1, &input); err != nil {
		return nil, err
	}
	v, tail, err := jsontree.Parse(input)
	if err != nil {
		return nil, err
	}
	if tail = strings.TrimSpace(tail); tail != "" {
		return nil, errors.New("leftover text after parsing JSON")
	}
	return Value(v), nil
}

// Value converts a parsed tree value to its Starlark counterpart.
// Objects and arrays are wrapped without copying their members.
func Value(v jsontree.Value) starlark.Value {
	switch v := v.(type) {
	case jsontree.String:
		return starlark.String(v)
	case jsontree.Number:
		return starlark.Float(v)
	case jsontree.Boolean:
		return starlark.Bool(v)
	case jsontree.Null:
		return starlark.None
	case jsontree.Array:
		return &Array{arr: v}
	case *jsontree.Object:
		return &Object{obj: v}
	default:
		return nil
	}
}

type proto struct {
	methods map[string]*starlark.Builtin
	names   []string
}

func newProto(methods map[string]*starlark.Builtin) *proto {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	return &proto{
		methods: methods,
		names:   names,
	}
}

func (p *proto) Get(name string, recv starlark.Value) (starlark.Value, error) {
	if m := p.methods[name]; m != nil {
		return m.BindReceiver(recv), nil
	}
	return nil, nil
}

func (p *proto) Names() []string {
	return p.names
}
