package reconcile

import (
	"sort"

	"github.com/melodex/melodex/pkg/normalize"
)

// ExcludeSet holds artists deliberately suppressed from the missing-from-
// external report, such as known false positives. Membership tests run on
// comparison keys so case or accent differences never defeat a suppression.
// The set is immutable after construction.
type ExcludeSet struct {
	keys  map[string]struct{}
	names []string
}

// NewExcludeSet builds an exclude set from plain artist names.
func NewExcludeSet(names []string) *ExcludeSet {
	s := &ExcludeSet{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		key := normalize.Key(name)
		if key == "" {
			continue
		}
		if _, ok := s.keys[key]; ok {
			continue
		}
		s.keys[key] = struct{}{}
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Contains reports whether the given name is excluded.
func (s *ExcludeSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[normalize.Key(name)]
	return ok
}

// ContainsKey reports whether the given comparison key is excluded.
func (s *ExcludeSet) ContainsKey(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[key]
	return ok
}

// Names returns the excluded names sorted alphabetically.
func (s *ExcludeSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of excluded artists.
func (s *ExcludeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
