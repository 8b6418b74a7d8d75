package normalize

import (
	"github.com/melodex/melodex/pkg/errors"
)

// MappingPair is one raw name to canonical name override as read from the
// mapping source, in source order.
type MappingPair struct {
	Raw       string `json:"raw" yaml:"raw"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Mapping is a curated raw name to canonical name override table. Overrides are
// consulted before any generic cleanup rule and always win. The table is
// immutable once built.
type Mapping struct {
	overrides map[string]string
}

// NewMapping builds a Mapping from ordered pairs. A pair with an empty raw key
// is a fatal load error. Later pairs for the same raw key silently override
// earlier ones; the mapping file is curated by hand and the last entry is
// taken as the current correction.
//
// Raw keys are whitespace-collapsed at load so that lookups hit regardless of
// stray padding in either the mapping file or the source data.
func NewMapping(pairs []MappingPair) (*Mapping, error) {
	overrides := make(map[string]string, len(pairs))
	for i, p := range pairs {
		raw := collapseWhitespace(p.Raw)
		if raw == "" {
			return nil, errors.NewMalformedRecordError("mapping", i+1, "empty raw name")
		}
		overrides[raw] = p.Canonical
	}
	return &Mapping{overrides: overrides}, nil
}

// EmptyMapping returns a mapping with no overrides.
func EmptyMapping() *Mapping {
	return &Mapping{overrides: map[string]string{}}
}

// Resolve returns the canonical override for a raw name, if one exists.
func (m *Mapping) Resolve(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	canonical, ok := m.overrides[name]
	return canonical, ok
}

// Len returns the number of overrides in the table.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.overrides)
}
