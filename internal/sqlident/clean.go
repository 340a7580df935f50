// Package sqlident converts arbitrary JSON field names and file names into
// identifiers that are safe to embed unquoted in SQL DDL.
package sqlident

import "strings"

// Clean sanitizes a raw JSON field name for use as an unquoted SQL column
// identifier.
//
// Rules, applied in order:
//  1. The leading run of non-letter characters is stripped once, so the
//     result starts with an ASCII letter (or is empty).
//  2. Every remaining character outside [A-Za-z0-9_] is dropped.
//  3. Residual ':' and '.' characters are removed in a final pass, even
//     though the filter above already drops them.
//
// Clean is total: it never fails, and an input with no letters legitimately
// yields "".
func Clean(raw string) string {
	i := 0
	for i < len(raw) && !isASCIILetter(raw[i]) {
		i++
	}

	var b strings.Builder
	b.Grow(len(raw) - i)
	for j := i; j < len(raw); j++ {
		c := raw[j]
		if isASCIILetter(c) || c >= '0' && c <= '9' || c == '_' {
			b.WriteByte(c)
		}
	}

	name := b.String()
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, ".", "")
	return name
}

func isASCIILetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
