package cursor

import (
	"slices"

	"github.com/dshills/splitview/internal/engine/buffer"
)

// Collection holds the cursors of one view.
// Cursors are kept sorted by range and never overlap once a batch is
// released. There is always at least one cursor.
type Collection struct {
	cursors   []Cursor
	mainIndex int
	guard     *Guard
}

// NewCollection creates a collection with one cursor at the buffer start.
func NewCollection() *Collection {
	return &Collection{
		cursors: []Cursor{NewCursor(buffer.Position{})},
	}
}

// MainCursor returns the main cursor.
func (c *Collection) MainCursor() Cursor {
	return c.cursors[c.mainIndex]
}

// MainIndex returns the index of the main cursor.
func (c *Collection) MainIndex() int {
	return c.mainIndex
}

// Len returns the number of cursors.
func (c *Collection) Len() int {
	return len(c.cursors)
}

// At returns the cursor at index i.
// Returns false if i is out of range.
func (c *Collection) At(i int) (Cursor, bool) {
	if i < 0 || i >= len(c.cursors) {
		return Cursor{}, false
	}
	return c.cursors[i], true
}

// All returns a copy of all cursors in order.
func (c *Collection) All() []Cursor {
	return slices.Clone(c.cursors)
}

// Clone returns an independent copy of the collection.
func (c *Collection) Clone() *Collection {
	return &Collection{
		cursors:   slices.Clone(c.cursors),
		mainIndex: c.mainIndex,
	}
}

// MutGuard begins a batch mutation. The returned guard must be released,
// usually with defer, to normalize the collection.
// Beginning a second batch before the first is released panics.
func (c *Collection) MutGuard() *Guard {
	if c.guard != nil {
		panic("cursor: collection already has an active guard")
	}
	c.guard = &Guard{collection: c, main: c.mainIndex}
	return c.guard
}

// Mutate runs fn inside a batch and releases it afterwards.
func (c *Collection) Mutate(fn func(g *Guard)) {
	g := c.MutGuard()
	defer g.Release()
	fn(g)
}

// Guard is a batch mutation handle over a Collection.
type Guard struct {
	collection *Collection
	main       int
	mainIsLast bool
	released   bool
}

// Cursors returns the live cursor slice. Elements may be modified in place
// until the guard is released.
func (g *Guard) Cursors() []Cursor {
	return g.collection.cursors
}

// Len returns the current number of cursors in the batch.
func (g *Guard) Len() int {
	return len(g.collection.cursors)
}

// Clear removes all cursors. Until SetMain is called the last added cursor
// becomes the main cursor.
func (g *Guard) Clear() {
	g.collection.cursors = g.collection.cursors[:0]
	g.mainIsLast = true
}

// Add appends a cursor.
func (g *Guard) Add(c Cursor) {
	g.collection.cursors = append(g.collection.cursors, c)
}

// SetMain marks the cursor at index i of the live slice as main.
// Out of range indices are ignored.
func (g *Guard) SetMain(i int) {
	if i < 0 || i >= len(g.collection.cursors) {
		return
	}
	g.main = i
	g.mainIsLast = false
}

// Release ends the batch: cursors are sorted, identical and overlapping ones
// merged, and an empty collection gets a single cursor at the buffer start.
// Calling Release more than once is safe.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true

	c := g.collection
	c.guard = nil

	main := g.main
	if g.mainIsLast {
		main = len(c.cursors) - 1
	}
	c.cursors, c.mainIndex = normalize(c.cursors, main)
}

type tagged struct {
	cursor Cursor
	main   bool
}

// normalize sorts and merges cursors, returning the new main index.
func normalize(cursors []Cursor, main int) ([]Cursor, int) {
	if len(cursors) == 0 {
		return append(cursors, NewCursor(buffer.Position{})), 0
	}

	items := make([]tagged, len(cursors))
	for i, cur := range cursors {
		items[i] = tagged{cursor: cur, main: i == main}
	}

	slices.SortStableFunc(items, func(a, b tagged) int {
		return a.cursor.Compare(b.cursor)
	})

	merged := items[:1]
	for _, item := range items[1:] {
		last := &merged[len(merged)-1]
		if mergeable(last.cursor, item.cursor) {
			last.cursor = union(last.cursor, item.cursor)
			last.main = last.main || item.main
			continue
		}
		merged = append(merged, item)
	}

	out := cursors[:0]
	mainIndex := 0
	for i, item := range merged {
		out = append(out, item.cursor)
		if item.main {
			mainIndex = i
		}
	}
	return out, mainIndex
}

// mergeable reports whether next, sorted after cur, must be folded into cur.
func mergeable(cur, next Cursor) bool {
	if cur == next {
		return true
	}
	a, b := cur.Range(), next.Range()
	return b.From.Before(a.To) || a.From == b.From
}

// union widens survivor to cover other, keeping the survivor's direction.
func union(survivor, other Cursor) Cursor {
	r := survivor.Range().Union(other.Range())
	if survivor.IsForward() {
		return Cursor{Anchor: r.From, Position: r.To}
	}
	return Cursor{Anchor: r.To, Position: r.From}
}
