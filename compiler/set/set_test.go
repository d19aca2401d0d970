package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOps(t *testing.T) {
	s := Of("a", "b")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, 2, s.Size())

	c := s.Copy()
	c.Add("c")

	assert.False(t, s.Has("c"), "copy must be independent")
	assert.True(t, c.Has("c"))

	s.Or(Of("c", "d"))
	assert.True(t, s.Equal(Of("a", "b", "c", "d")))

	s.AndNot(Of("b", "d", "e"))
	assert.True(t, s.Equal(Of("a", "c")))

	s.Del("a")
	assert.True(t, s.Equal(Of("c")))

	assert.False(t, s.Equal(Of("c", "x")))
	assert.False(t, s.Equal(Of[string]()))
}

func TestSetRangeSlice(t *testing.T) {
	s := Of(3, 1, 2)

	n := 0
	s.Range(func(int) bool { n++; return true })
	assert.Equal(t, 3, n)

	n = 0
	s.Range(func(int) bool { n++; return false })
	assert.Equal(t, 1, n)

	require.ElementsMatch(t, []int{1, 2, 3}, s.Slice())
}

func TestBits(t *testing.T) {
	s := BitsOf(1, 3, 70)

	assert.True(t, s.IsSet(1))
	assert.True(t, s.IsSet(70))
	assert.False(t, s.IsSet(2))
	assert.False(t, s.IsSet(200))
	assert.Equal(t, 3, s.Size())

	s.Clear(3)
	assert.False(t, s.IsSet(3))

	var got []int
	s.Range(func(k int) bool {
		got = append(got, k)
		return true
	})

	assert.Equal(t, []int{1, 70}, got)

	c := s.Copy()
	c.Set(5)
	assert.False(t, s.IsSet(5), "copy must be independent")

	s.Merge(BitsOf(2, 100))
	assert.True(t, s.IsSet(100))
	assert.Equal(t, 4, s.Size())
}
