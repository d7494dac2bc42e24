package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrhash(t *testing.T) {
	assert.Equal(t, uint32(0), Strhash(""))
	assert.Equal(t, uint32('a'), Strhash("a"))
	assert.Equal(t, uint32(31*'a'+'b'), Strhash("ab"))
}

func TestStringSetAddAndFind(t *testing.T) {
	s, err := NewStringSet(4)
	assert.NoError(t, err)

	assert.NoError(t, s.Add("a"))
	assert.NoError(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())

	v, found := s.Find("a")
	assert.True(t, found, "'a' should be in the set")
	assert.Equal(t, "a", v)

	_, found = s.Find("c")
	assert.False(t, found, "'c' should not be in the set")
}

func TestStringSetDuplicateAdd(t *testing.T) {
	s, err := NewStringSet(8)
	assert.NoError(t, err)

	assert.NoError(t, s.Add("alpha"))
	assert.NoError(t, s.Add("alpha"))
	assert.Equal(t, 1, s.Len())
}

func TestStringSetRemoveThenReAdd(t *testing.T) {
	s, err := NewStringSet(4)
	assert.NoError(t, err)

	assert.NoError(t, s.Add("a"))
	s.Remove("a")
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 0, s.Len())

	assert.NoError(t, s.Add("a"))
	assert.Equal(t, 1, s.Len())
}

func TestStringSetElements(t *testing.T) {
	s, err := NewStringSet(8)
	assert.NoError(t, err)

	for _, elt := range []string{"a", "b", "c", "d"} {
		assert.NoError(t, s.Add(elt))
	}
	elems := s.Elements()
	assert.Len(t, elems, 4)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, elems)
}

func TestStringSetCollision(t *testing.T) {
	// "a" and "c" share a home slot in a table of two
	assert.Equal(t, Strhash("a")%2, Strhash("c")%2)

	s, err := NewStringSet(2)
	assert.NoError(t, err)
	assert.NoError(t, s.Add("a"))
	assert.NoError(t, s.Add("c"))

	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("c"))
}

func TestStringSetTombstoneKeepsProbePath(t *testing.T) {
	// "a" and "e" share home slot 1 in a table of four
	assert.Equal(t, Strhash("a")%4, Strhash("e")%4)

	s, err := NewStringSet(4)
	assert.NoError(t, err)
	assert.NoError(t, s.Add("a"))
	assert.NoError(t, s.Add("b"))
	assert.NoError(t, s.Add("e"))

	s.Remove("a")
	assert.True(t, s.Contains("e"), "removal of 'a' must not shadow 'e'")
	assert.True(t, s.Contains("b"))
	assert.Equal(t, 2, s.Len())
}

func TestStringSetTombstoneReuse(t *testing.T) {
	// "a" and "i" share home slot 1 in a table of eight
	home := int(Strhash("a") % 8)
	assert.Equal(t, home, int(Strhash("i")%8))

	s, err := NewStringSet(8)
	assert.NoError(t, err)
	assert.NoError(t, s.Add("a"))
	s.Remove("a")
	assert.NoError(t, s.Add("i"))

	assert.Equal(t, slotOccupied, s.table.flags[home])
	assert.Equal(t, "i", s.table.data[home])
}

func TestStringSetEmptyStringMember(t *testing.T) {
	s, err := NewStringSet(4)
	assert.NoError(t, err)

	assert.NoError(t, s.Add(""))
	assert.True(t, s.Contains(""))
	assert.Equal(t, 1, s.Len())

	s.Remove("")
	assert.False(t, s.Contains(""))
}

func TestStringSetFull(t *testing.T) {
	s, err := NewStringSet(2)
	assert.NoError(t, err)

	assert.NoError(t, s.Add("x"))
	assert.NoError(t, s.Add("y"))
	assert.ErrorIs(t, s.Add("z"), ErrFull)
}

func TestStringSetInvalidCapacity(t *testing.T) {
	_, err := NewStringSet(-3)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestStringSetReset(t *testing.T) {
	s, err := NewStringSet(4)
	assert.NoError(t, err)

	assert.NoError(t, s.Add("a"))
	assert.NoError(t, s.Add("b"))
	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("a"))
	assert.NoError(t, s.Add("a"))
}
