package set

import "strings"

// Strhash is the polynomial string hash h = 31*h + c over the bytes of s,
// wrapping in uint32. It is case sensitive.
func Strhash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}
	return h
}

// StringSet is a fixed-capacity set of strings backed by an open-addressed
// table keyed with Strhash. Inserted strings are detached with
// strings.Clone so the set never pins a caller's larger backing array,
// and their storage is counted against the package memory counter.
type StringSet struct {
	table *Table[string]
}

// NewStringSet creates a new StringSet holding at most maxElts strings.
func NewStringSet(maxElts int) (*StringSet, error) {
	table, err := NewTable[string](maxElts, Strhash, func(a, b string) bool { return a == b })
	if err != nil {
		return nil, err
	}
	table.WithClone(strings.Clone)
	return &StringSet{table: table}, nil
}

// Add inserts elt into the set. Duplicates are a silent no-op.
func (s *StringSet) Add(elt string) error {
	before := s.table.Len()
	if err := s.table.Add(elt); err != nil {
		return err
	}
	if s.table.Len() != before {
		IncreaseUsedMemory(elt)
	}
	return nil
}

// Remove deletes elt from the set, silently doing nothing when absent.
func (s *StringSet) Remove(elt string) {
	before := s.table.Len()
	s.table.Remove(elt)
	if s.table.Len() != before {
		DecreaseUsedMemory(elt)
	}
}

// Find returns the stored string equal to elt and whether it is present.
func (s *StringSet) Find(elt string) (string, bool) {
	return s.table.Find(elt)
}

// Contains checks if elt is in the set
func (s *StringSet) Contains(elt string) bool {
	_, found := s.table.Find(elt)
	return found
}

// Len returns the number of strings in the set
func (s *StringSet) Len() int {
	return s.table.Len()
}

// Cap returns the fixed capacity chosen at construction
func (s *StringSet) Cap() int {
	return s.table.Cap()
}

// Elements returns a freshly allocated slice of the members in slot-index
// order. No ordering beyond that is guaranteed.
func (s *StringSet) Elements() []string {
	return s.table.Elements()
}

// Reset drops every member and returns the set to the empty state.
func (s *StringSet) Reset() {
	for _, elt := range s.table.Elements() {
		DecreaseUsedMemory(elt)
	}
	s.table.Reset()
}
