package cursor

import (
	"fmt"

	"github.com/dshills/splitview/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Cursor represents a selection in a buffer.
// Anchor is where the selection started; Position is where typing occurs.
// Cursor is a value type.
type Cursor struct {
	Anchor   Position
	Position Position
}

// NewCursor creates a cursor with no extent at pos.
func NewCursor(pos Position) Cursor {
	return Cursor{Anchor: pos, Position: pos}
}

// NewSelection creates a cursor selecting from anchor to pos.
func NewSelection(anchor, pos Position) Cursor {
	return Cursor{Anchor: anchor, Position: pos}
}

// Range returns the selected range, ordered.
func (c Cursor) Range() Range {
	return buffer.RangeBetween(c.Anchor, c.Position)
}

// IsEmpty returns true if the cursor selects nothing.
func (c Cursor) IsEmpty() bool {
	return c.Anchor == c.Position
}

// IsForward returns true if the selection extends forward.
func (c Cursor) IsForward() bool {
	return !c.Position.Before(c.Anchor)
}

// Collapse returns a cursor with the anchor moved onto the position.
func (c Cursor) Collapse() Cursor {
	return Cursor{Anchor: c.Position, Position: c.Position}
}

// Compare orders cursors by range start, then by range end.
func (c Cursor) Compare(other Cursor) int {
	a, b := c.Range(), other.Range()
	if cmp := a.From.Compare(b.From); cmp != 0 {
		return cmp
	}
	return a.To.Compare(b.To)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%v->%v)", c.Anchor, c.Position)
}

// Insert returns the cursor adjusted for text inserted at r.
// r is the range the inserted text now occupies.
func (c Cursor) Insert(r Range) Cursor {
	return Cursor{
		Anchor:   insertPosition(c.Anchor, r),
		Position: insertPosition(c.Position, r),
	}
}

// Delete returns the cursor adjusted for the removal of r.
func (c Cursor) Delete(r Range) Cursor {
	return Cursor{
		Anchor:   deletePosition(c.Anchor, r),
		Position: deletePosition(c.Position, r),
	}
}

// insertPosition shifts p when it lies at or after the insertion point.
func insertPosition(p Position, r Range) Position {
	if p.Before(r.From) {
		return p
	}

	if p.Line == r.From.Line {
		p.Column = r.To.Column + (p.Column - r.From.Column)
	}
	p.Line += r.To.Line - r.From.Line
	return p
}

// deletePosition collapses p into r.From when inside r and shifts it back when
// after r.
func deletePosition(p Position, r Range) Position {
	if p.Before(r.From) {
		return p
	}
	if p.Before(r.To) {
		return r.From
	}

	if p.Line == r.To.Line {
		p.Column = r.From.Column + (p.Column - r.To.Column)
	}
	p.Line -= r.To.Line - r.From.Line
	return p
}
