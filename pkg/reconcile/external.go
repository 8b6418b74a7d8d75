package reconcile

import (
	"sort"

	"github.com/melodex/melodex/pkg/normalize"
)

// ExternalList is the artist list sourced from the external platform, loaded
// once per run from a cache file or a live fetch. The engine treats both the
// same: a set of names with their comparison keys.
type ExternalList struct {
	keys  map[string]struct{}
	names []string
}

// NewExternalList builds an external list from plain artist names. Duplicate
// keys collapse to the first-seen spelling.
func NewExternalList(names []string) *ExternalList {
	l := &ExternalList{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		key := normalize.Key(name)
		if key == "" {
			continue
		}
		if _, ok := l.keys[key]; ok {
			continue
		}
		l.keys[key] = struct{}{}
		l.names = append(l.names, name)
	}
	sort.Strings(l.names)
	return l
}

// ContainsKey reports whether the list holds a name with the given comparison key.
func (l *ExternalList) ContainsKey(key string) bool {
	if l == nil {
		return false
	}
	_, ok := l.keys[key]
	return ok
}

// Names returns the platform's artist names sorted alphabetically.
func (l *ExternalList) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of distinct artists on the platform list.
func (l *ExternalList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}
