//+build appengine

package jsontree

func b2s(b []byte) string {
	return string(b)
}
