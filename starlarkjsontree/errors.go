package starlarkjsontree

// TypeError signifies a value used where its type is not supported.
type TypeError string

func (e TypeError) Error() string {
	return "TypeError: " + string(e)
}
