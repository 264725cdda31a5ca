package jsontree

import (
	"fmt"
	"reflect"
	"testing"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
}

func assert(t *testing.T, ok bool, msg string, a ...interface{}) {
	t.Helper()
	if !ok {
		t.Fatalf("Assertion failed: %s", fmt.Sprintf(msg, a...))
	}
}

func assertEqual(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Assertion failed: %v != %v", a, b)
	}
}

// obj builds an Object from members, applying the overwrite semantics of parsing.
func obj(members ...KV) *Object {
	o := new(Object)
	for _, kv := range members {
		o.set(kv.Key, kv.Value)
	}
	return o
}
