package cursor

import "fmt"

// FixupKind identifies the kind of edit a fixup compensates for.
type FixupKind uint8

const (
	FixupInsert FixupKind = iota
	FixupDelete
)

// String returns a string representation of the fixup kind.
func (k FixupKind) String() string {
	switch k {
	case FixupInsert:
		return "insert"
	case FixupDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Fixup describes how cursors must move after a buffer edit.
// For FixupInsert, Range is where the inserted text now lives.
// For FixupDelete, Range is the removed text before removal.
type Fixup struct {
	Kind  FixupKind
	Range Range
}

// InsertFixup creates a fixup for text inserted at r.
func InsertFixup(r Range) Fixup {
	return Fixup{Kind: FixupInsert, Range: r}
}

// DeleteFixup creates a fixup for text removed from r.
func DeleteFixup(r Range) Fixup {
	return Fixup{Kind: FixupDelete, Range: r}
}

// Apply returns c adjusted by the fixup.
func (f Fixup) Apply(c Cursor) Cursor {
	switch f.Kind {
	case FixupInsert:
		return c.Insert(f.Range)
	case FixupDelete:
		return c.Delete(f.Range)
	default:
		return c
	}
}

// ApplyAll applies every fixup to every cursor in place, in order.
func ApplyAll(cursors []Cursor, fixups []Fixup) {
	for _, f := range fixups {
		for i := range cursors {
			cursors[i] = f.Apply(cursors[i])
		}
	}
}

// String returns a string representation of the fixup.
func (f Fixup) String() string {
	return fmt.Sprintf("%s%v", f.Kind, f.Range)
}
