package buffer

import "fmt"

// EditKind categorizes a recorded edit.
type EditKind uint8

const (
	EditInsert EditKind = iota // Text was inserted
	EditDelete                 // Text was deleted
)

// String returns a string representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is a single recorded change to a Content.
// For inserts Range is the range the text occupies after the insertion;
// for deletes it is the range the text occupied before the deletion.
// CursorIndex is the index of the issuing cursor in its view at edit time.
type Edit struct {
	Kind        EditKind
	Range       Range
	Text        string
	CursorIndex int
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s%s %q #%d", e.Kind, e.Range, e.Text, e.CursorIndex)
}

// Invert returns the edit that undoes this one.
func (e Edit) Invert() Edit {
	inv := e
	switch e.Kind {
	case EditInsert:
		inv.Kind = EditDelete
	case EditDelete:
		inv.Kind = EditInsert
	}
	return inv
}

// Apply performs the edit on c.
func (e Edit) Apply(c *Content) {
	switch e.Kind {
	case EditInsert:
		c.InsertText(e.Range.From, e.Text)
	case EditDelete:
		c.DeleteRange(e.Range)
	}
}
