package sqlident

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxIdentifierLen matches the PostgreSQL identifier limit, the tightest
// among the supported targets.
const maxIdentifierLen = 63

// Normalize converts arbitrary text (typically a file name) into a lowercase
// ASCII identifier suitable for SQL table names:
//  1. lowercase
//  2. strip accents (NFD → remove Mn → NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
//  4. fallback to "tbl" if nothing survives
//  5. truncate to 63 bytes (first 10 + last 53) when longer
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Decompose, remove nonspacing marks, recompose.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		default:
			// drop anything else
		}
	}

	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "tbl"
	}
	if len(name) > maxIdentifierLen {
		name = name[:10] + name[len(name)-(maxIdentifierLen-10):]
	}
	return name
}
