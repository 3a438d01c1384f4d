package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollection_AddGet(t *testing.T) {
	c := NewCollection()

	a := c.Add(New("a.txt", nil))
	b := c.Add(New("b.txt", nil))

	require.NotEqual(t, a, b)
	require.Equal(t, 2, c.Len())

	doc, ok := c.Get(b)
	require.True(t, ok)
	require.Equal(t, "b.txt", doc.Path)

	_, ok = c.Get(Handle(7))
	require.False(t, ok)
	_, ok = c.Get(Handle(-1))
	require.False(t, ok)
}

func TestCollection_RemoveRecyclesSlot(t *testing.T) {
	c := NewCollection()

	a := c.Add(New("a.txt", nil))
	c.Add(New("b.txt", nil))

	require.True(t, c.Remove(a))
	require.False(t, c.Remove(a), "second remove of a stale handle")

	_, ok := c.Get(a)
	require.False(t, ok)

	reused := c.Add(New("c.txt", nil))
	require.Equal(t, a, reused)
	require.Equal(t, 2, c.Len())
}

func TestCollection_OnRemoveNotifies(t *testing.T) {
	c := NewCollection()
	var removed []Handle
	c.OnRemove(func(h Handle) {
		_, ok := c.Get(h)
		require.False(t, ok, "document must be gone before notification")
		removed = append(removed, h)
	})

	h := c.Add(New("a.txt", nil))
	c.Remove(h)
	c.Remove(h)

	require.Equal(t, []Handle{h}, removed)
}

func TestCollection_RemoveWhere(t *testing.T) {
	c := NewCollection()
	c.Add(New("keep.txt", nil))
	scratch1 := c.Add(New("", nil))
	scratch2 := c.Add(New("", nil))

	n := c.RemoveWhere(func(_ Handle, d *Document) bool { return d.IsScratch() })

	require.Equal(t, 2, n)
	require.Equal(t, 1, c.Len())
	_, ok := c.Get(scratch1)
	require.False(t, ok)
	_, ok = c.Get(scratch2)
	require.False(t, ok)
}

func TestCollection_FindWithPath(t *testing.T) {
	c := NewCollection()
	c.Add(New("", nil))
	h := c.Add(New("/src/main.go", nil))

	found, ok := c.FindWithPath("/src/main.go")
	require.True(t, ok)
	require.Equal(t, h, found)

	_, ok = c.FindWithPath("/src/other.go")
	require.False(t, ok)

	_, ok = c.FindWithPath("")
	require.False(t, ok, "scratch documents are never found by path")
}

func TestCollection_AllSkipsFreeSlots(t *testing.T) {
	c := NewCollection()
	a := c.Add(New("a", nil))
	c.Add(New("b", nil))
	c.Remove(a)

	var names []string
	for _, d := range c.All() {
		names = append(names, d.Path)
	}
	require.Equal(t, []string{"b"}, names)
}
