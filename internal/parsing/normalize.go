package parsing

import (
	"strings"
	"unicode"
)

// Title converts a lowercase catalog term to its display form: the first
// letter of each letter-run is uppercased, the rest lowercased. Unlike
// strings.ToTitle this matches the display convention used throughout the
// catalog ("power bi" -> "Power Bi", "node.js" -> "Node.Js", "c++" -> "C++").
func Title(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}

// Lower normalizes a display-form skill list back to lowercase for set
// comparisons against the taxonomy.
func Lower(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = strings.ToLower(s)
	}
	return out
}
