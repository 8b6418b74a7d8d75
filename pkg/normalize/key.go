package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes, drops combining marks, and recomposes, so that
// "Beyoncé" and "Beyonce" share a key.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Key derives the comparison key of a cleaned name: case-folded,
// accent-stripped, punctuation dropped, whitespace collapsed. All set
// membership tests (exclude list, external platform list) use keys; the
// cleaned name itself is what gets displayed. Key is a pure function of its
// input and never stored alongside it.
func Key(name string) string {
	folded := cases.Fold().String(name)

	stripped, _, err := transform.String(stripAccents, folded)
	if err != nil {
		// Transform failures only happen on invalid UTF-8; fall back to the
		// folded form so the key is still usable.
		stripped = folded
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation and symbols are dropped outright.
	}

	return collapseWhitespace(b.String())
}
