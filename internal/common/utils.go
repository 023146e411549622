package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are kept as byte slices so they can be wiped after use.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
