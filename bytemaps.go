package jsontree

// Byte class lookup tables sized to avoid bounds checks on byte indexing.
var (
	bytemapIsSpace = [256]byte{
		'\t': 1, '\n': 1, '\r': 1, ' ': 1,
	}
	bytemapIsDigit = [256]byte{
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1,
		'5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
	}
)

func isSpace(c byte) bool {
	return bytemapIsSpace[c] == 1
}

func isDigit(c byte) bool {
	return bytemapIsDigit[c] == 1
}

// skipSpace returns s with any leading whitespace removed.
func skipSpace(s string) string {
	for i := 0; i < len(s); i++ {
		if bytemapIsSpace[s[i]] == 0 {
			return s[i:]
		}
	}
	return ""
}

// readDigits splits s into its leading digit run and the rest.
func readDigits(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if bytemapIsDigit[s[i]] == 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
