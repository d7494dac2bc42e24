package set

import (
	"sort"
	"strings"
)

// SortedStringSet is a fixed-capacity set of strings kept in a sorted
// backing array. Lookups run a binary search; Elements yields the members
// in ascending byte order. Like StringSet it owns detached copies of its
// members and is not safe for concurrent use.
type SortedStringSet struct {
	data []string // sorted ascending, len(data) is the element count
	size int
}

// NewSortedStringSet creates a new SortedStringSet holding at most
// maxElts strings.
func NewSortedStringSet(maxElts int) (*SortedStringSet, error) {
	if maxElts < 0 {
		return nil, ErrInvalidCapacity
	}
	return &SortedStringSet{
		data: make([]string, 0, maxElts),
		size: maxElts,
	}, nil
}

// search returns the insertion index for elt and whether it is present.
func (s *SortedStringSet) search(elt string) (int, bool) {
	index := sort.SearchStrings(s.data, elt)
	return index, index < len(s.data) && s.data[index] == elt
}

// Add inserts elt at its sorted position. Duplicates are a silent no-op.
// Returns ErrFull when the set already holds its maximum.
func (s *SortedStringSet) Add(elt string) error {
	index, found := s.search(elt)
	if found {
		return nil
	}
	if len(s.data) == s.size {
		return ErrFull
	}
	s.data = append(s.data, "")
	copy(s.data[index+1:], s.data[index:])
	s.data[index] = strings.Clone(elt)
	IncreaseUsedMemory(elt)
	return nil
}

// Remove deletes elt, shifting later members down to keep the array
// sorted. Absent elements are a silent no-op.
func (s *SortedStringSet) Remove(elt string) {
	index, found := s.search(elt)
	if !found {
		return
	}
	DecreaseUsedMemory(s.data[index])
	last := len(s.data) - 1
	copy(s.data[index:], s.data[index+1:])
	s.data[last] = ""
	s.data = s.data[:last]
}

// Find returns the stored string equal to elt and whether it is present.
func (s *SortedStringSet) Find(elt string) (string, bool) {
	index, found := s.search(elt)
	if !found {
		return "", false
	}
	return s.data[index], true
}

// Contains checks if elt is in the set
func (s *SortedStringSet) Contains(elt string) bool {
	_, found := s.search(elt)
	return found
}

// Len returns the number of strings in the set
func (s *SortedStringSet) Len() int {
	return len(s.data)
}

// Cap returns the fixed capacity chosen at construction
func (s *SortedStringSet) Cap() int {
	return s.size
}

// Elements returns a freshly allocated slice of the members in ascending
// byte order.
func (s *SortedStringSet) Elements() []string {
	out := make([]string, len(s.data))
	copy(out, s.data)
	return out
}

// Reset drops every member and returns the set to the empty state.
func (s *SortedStringSet) Reset() {
	for i, elt := range s.data {
		DecreaseUsedMemory(elt)
		s.data[i] = ""
	}
	s.data = s.data[:0]
}
