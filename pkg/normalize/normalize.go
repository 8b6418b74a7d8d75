// Package normalize implements the deterministic name-cleanup pipeline used to
// collapse fuzzy-duplicate artist and album names to a single canonical form.
//
// Cleanup is rule based, not statistical: an ordered chain of whitespace
// normalization, curated mapping overrides, and suffix-removal rules. The same
// input always produces the same output, and cleaning an already-clean name
// changes nothing.
package normalize

import (
	"regexp"
	"strings"

	"github.com/melodex/melodex/pkg/errors"
)

// Cleanup keywords carried over from the original curation rules. A bracketed
// segment is removed only when it contains one of these, so "(Live at Wembley)"
// survives while "(Remastered 2014)" does not.
var (
	bracketRe = regexp.MustCompile(`(?i)\s*[(\[][^()\[\]]*(remaster|deluxe|bonus|mix|edition|feat)[^()\[\]]*[)\]]`)

	dashSuffixRe = regexp.MustCompile(`(?i)\s+-\s+[^-]*\b(remaster(ed)?|deluxe|bonus|single|ep|edition|version|mix)\b[^-]*$`)
)

// Name cleans a raw artist name. The steps run in fixed order: whitespace is
// trimmed and collapsed, the mapping override is consulted (and wins
// unconditionally), then the generic suffix rules apply. An empty result is an
// error, never an empty canonical name.
func Name(raw string, m *Mapping) (string, error) {
	return clean(raw, m)
}

// Title cleans a raw album title with the same rule chain as Name. Kept as a
// separate entry point so call sites read as what they clean.
func Title(raw string, m *Mapping) (string, error) {
	return clean(raw, m)
}

func clean(raw string, m *Mapping) (string, error) {
	s := collapseWhitespace(raw)

	// Curated override beats every generic rule.
	if canonical, ok := m.Resolve(s); ok {
		canonical = collapseWhitespace(canonical)
		if canonical == "" {
			return "", errors.NewEmptyNameError(raw)
		}
		return canonical, nil
	}

	s = bracketRe.ReplaceAllString(s, "")

	// A stripped bracket segment can expose another dash marker, so the dash
	// rule runs to a fixed point.
	for {
		next := dashSuffixRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}

	s = collapseWhitespace(s)
	if s == "" {
		return "", errors.NewEmptyNameError(raw)
	}
	return s, nil
}

// collapseWhitespace trims the string and collapses internal whitespace runs
// to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
