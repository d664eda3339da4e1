package seed

import "strings"

// NameSet is an insertion-ordered set of trimmed, non-empty names.
type NameSet struct {
	names []string
	index map[string]struct{}
}

// NewNameSet creates an empty name set.
func NewNameSet() *NameSet {
	return &NameSet{index: make(map[string]struct{})}
}

// Add trims name and adds it unless it is blank or already present.
// It reports whether the set changed.
func (s *NameSet) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, exists := s.index[name]; exists {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains checks if name exists in the set.
func (s *NameSet) Contains(name string) bool {
	_, exists := s.index[strings.TrimSpace(name)]
	return exists
}

// Size returns the number of names in the set.
func (s *NameSet) Size() int {
	return len(s.names)
}

// Names returns the names in insertion order.
func (s *NameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
