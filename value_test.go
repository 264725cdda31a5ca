package jsontree

import (
	"testing"
)

func TestEqual(t *testing.T) {
	for _, tt := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil", nil, nil, true},
		{"nil/null", nil, Null{}, false},
		{"null", Null{}, Null{}, true},
		{"string", String("a"), String("a"), true},
		{"string mismatch", String("a"), String("b"), false},
		{"string/number", String("1"), Number(1), false},
		{"number", Number(1.5), Number(1.5), true},
		{"boolean", Boolean(true), Boolean(true), true},
		{"boolean mismatch", Boolean(true), Boolean(false), false},
		{"array", Array{Number(1), Null{}}, Array{Number(1), Null{}}, true},
		{"array order", Array{Number(1), Number(2)}, Array{Number(2), Number(1)}, false},
		{"array length", Array{Number(1)}, Array{}, false},
		{"object", obj(KV{"a", Number(1)}), obj(KV{"a", Number(1)}), true},
		{"object value", obj(KV{"a", Number(1)}), obj(KV{"a", Number(2)}), false},
		{"object key order",
			obj(KV{"a", Number(1)}, KV{"b", Number(2)}),
			obj(KV{"b", Number(2)}, KV{"a", Number(1)}),
			false},
		{"nested",
			obj(KV{"a", Array{obj(KV{"b", Null{}})}}),
			obj(KV{"a", Array{obj(KV{"b", Null{}})}}),
			true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric, got %v", got)
			}
		})
	}
}
