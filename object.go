package jsontree

// KV is a single key-value member of an Object.
type KV struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from string keys to values.
//
// Keys keep the position of their first insertion. Setting an existing key
// during construction overwrites its value in place instead of appending a
// new member, so a document that repeats a key yields a single member
// holding the last value at the position of the first occurrence.
type Object struct {
	members []KV
	index   map[string]int
}

func (*Object) Type() Type { return TypeObject }
func (*Object) sealed()    {}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get looks up the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	if i, ok := o.index[key]; ok {
		return o.members[i].Value, true
	}
	return nil, false
}

// At returns the member at position i in key insertion order.
func (o *Object) At(i int) KV {
	return o.members[i]
}

// Keys returns all keys in insertion order.
func (o *Object) Keys() []string {
	if o.Len() == 0 {
		return nil
	}
	keys := make([]string, len(o.members))
	for i := range o.members {
		keys[i] = o.members[i].Key
	}
	return keys
}

// set inserts a member during parsing.
// A repeated key overwrites the value at its original position.
func (o *Object) set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, KV{Key: key, Value: v})
}
