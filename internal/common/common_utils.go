package common

import (
	"strings"
)

// Slugify lowercases a name and folds everything that is not a letter or
// digit into single dots, so "Ana Souza" becomes "ana.souza". Used to build
// placeholder e-mail addresses for auto-created member records.
func Slugify(name string) string {
	var b strings.Builder
	lastDot := true // avoid a leading dot

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDot = false
		case accentFold[r] != 0:
			b.WriteRune(accentFold[r])
			lastDot = false
		default:
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), ".")
}

// Portuguese names carry accents; fold the common ones instead of dropping
// whole syllables from the slug.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a',
	'é': 'e', 'ê': 'e',
	'í': 'i',
	'ó': 'o', 'õ': 'o', 'ô': 'o',
	'ú': 'u', 'ü': 'u',
	'ç': 'c',
}
