package set

// https://en.wikipedia.org/wiki/Open_addressing

// slotState is the per-index tag of the backing array.
// A tombstone marks a removed element; it does not terminate a probe
// but may be reclaimed by a later insert.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type HashFunc[T any] func(elt T) uint32

type EqualFunc[T any] func(a, b T) bool

// CloneFunc copies an element on insert so the table owns its storage.
type CloneFunc[T any] func(elt T) T

// Table is a fixed-capacity set backed by an open-addressed hash table
// with linear probing and lazy deletion. Capacity never changes after
// construction; there is no rehashing. Elements are borrowed from the
// caller unless a clone function is installed with WithClone.
//
// Table is not safe for concurrent use.
type Table[T any] struct {
	data  []T
	flags []slotState
	count int
	hash  HashFunc[T]
	equal EqualFunc[T]
	clone CloneFunc[T]
}

// NewTable returns an empty table holding at most maxElts elements.
func NewTable[T any](maxElts int, hash HashFunc[T], equal EqualFunc[T]) (*Table[T], error) {
	if maxElts < 0 {
		return nil, ErrInvalidCapacity
	}
	if hash == nil || equal == nil {
		panic("set: nil strategy function")
	}
	return &Table[T]{
		data:  make([]T, maxElts),
		flags: make([]slotState, maxElts),
		hash:  hash,
		equal: equal,
	}, nil
}

// WithClone makes the table copy every element on insert instead of
// borrowing the caller's value. Must be called before the first Add.
func (t *Table[T]) WithClone(clone CloneFunc[T]) *Table[T] {
	t.clone = clone
	return t
}

// lookup walks the probe sequence for elt. It returns the element's slot
// and true when elt is present. Otherwise it returns false together with
// the slot a subsequent insert should use: the first tombstone seen on the
// probe path if any, else the first empty slot, else the no-room sentinel
// len(t.flags).
//
// The first tombstone is only returned once an empty slot (or the end of
// the sequence) proves the element absent; stopping at the tombstone
// directly would shadow a duplicate sitting behind it.
func (t *Table[T]) lookup(elt T) (int, bool) {
	size := len(t.flags)
	if size == 0 {
		return size, false
	}
	home := int(t.hash(elt) % uint32(size))
	firstTombstone := size
	for i := 0; i < size; i++ {
		index := (home + i) % size
		switch t.flags[index] {
		case slotEmpty:
			if firstTombstone != size {
				return firstTombstone, false
			}
			return index, false
		case slotOccupied:
			if t.equal(t.data[index], elt) {
				return index, true
			}
		case slotTombstone:
			if firstTombstone == size {
				firstTombstone = index
			}
		}
	}
	return firstTombstone, false
}

// Add inserts elt. Inserting an element already present is a no-op.
// Returns ErrFull when neither an empty slot nor a tombstone is left.
func (t *Table[T]) Add(elt T) error {
	index, found := t.lookup(elt)
	if found {
		return nil
	}
	if index == len(t.flags) {
		return ErrFull
	}
	if t.clone != nil {
		elt = t.clone(elt)
	}
	t.data[index] = elt
	t.flags[index] = slotOccupied
	t.count++
	return nil
}

// Remove deletes elt, silently doing nothing when it is absent.
// The slot becomes a tombstone; it is never turned back into an empty
// slot, so probe paths through it stay intact.
func (t *Table[T]) Remove(elt T) {
	index, found := t.lookup(elt)
	if !found {
		return
	}
	var zero T
	t.data[index] = zero
	t.flags[index] = slotTombstone
	t.count--
}

// Find returns the stored element equal to elt and whether it is present.
// The returned value is the table's copy when a clone function is
// installed, otherwise the value the caller inserted.
func (t *Table[T]) Find(elt T) (T, bool) {
	index, found := t.lookup(elt)
	if !found {
		var zero T
		return zero, false
	}
	return t.data[index], true
}

// Len returns the number of elements in the table
func (t *Table[T]) Len() int {
	return t.count
}

// Cap returns the fixed capacity chosen at construction
func (t *Table[T]) Cap() int {
	return len(t.flags)
}

// Empty returns true if the table holds no elements
func (t *Table[T]) Empty() bool {
	return t.count == 0
}

// Elements returns a freshly allocated slice of every element in
// slot-index order. Its length equals Len.
func (t *Table[T]) Elements() []T {
	out := make([]T, 0, t.count)
	for i, flag := range t.flags {
		if flag == slotOccupied {
			out = append(out, t.data[i])
		}
	}
	return out
}

// Reset drops every element and returns the table to its freshly
// constructed state. Stored references are zeroed so the garbage
// collector can reclaim them.
func (t *Table[T]) Reset() {
	var zero T
	for i := range t.flags {
		t.data[i] = zero
		t.flags[i] = slotEmpty
	}
	t.count = 0
}
