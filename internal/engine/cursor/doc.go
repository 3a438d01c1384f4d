// Package cursor provides cursor and multi-cursor management for views.
//
// The cursor package handles:
//
//   - Single cursors with an anchor/position model via the Cursor type
//   - Positional fixups after buffer edits via Fixup
//   - Multi-cursor support with Collection and its mutation Guard
//
// Cursor Model:
//
// A Cursor has an Anchor, where the selection started, and a Position, where
// typing occurs. When Anchor == Position the cursor selects nothing. The
// selection may extend forward or backward; Range always returns the ordered
// pair.
//
// Fixups:
//
// When text changes underneath a cursor its coordinates are shifted so they
// keep pointing at the same text:
//
//	fix := cursor.Fixup{Kind: cursor.FixupInsert, Range: inserted}
//	c = fix.Apply(c)
//
// An insertion at exactly the cursor pushes the cursor after the inserted
// text. A deletion covering the cursor collapses it onto the deletion start.
//
// Collections:
//
// Collection is only mutated in batches through a Guard. Releasing the guard
// sorts the cursors, merges identical and overlapping ones, and guarantees at
// least one cursor:
//
//	guard := cursors.MutGuard()
//	defer guard.Release()
//	guard.Clear()
//	guard.Add(cursor.NewCursor(pos))
//
// The main cursor is followed through sorting and merging. If it is merged
// into another cursor, the merged result becomes the main cursor.
//
// Thread Safety:
//
// Cursor and Fixup are value types. Collection is not thread-safe.
package cursor
