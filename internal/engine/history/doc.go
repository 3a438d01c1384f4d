// Package history provides undo/redo bookkeeping for a single buffer.
//
// History records the buffer.Edit values applied to a buffer and groups them
// into undo units. Edits are recorded into a pending group until Commit is
// called; Undo implicitly commits the pending group first.
//
//	h := history.NewHistory(1000) // Max 1000 undo groups
//
//	h.Record(edit)
//	h.Commit()
//
//	for _, e := range h.Undo() {
//	    e.Apply(content)
//	}
//
// Undo returns the inverted edits of the most recent group in the order they
// must be applied (newest first). Redo returns the original edits of the most
// recently undone group in chronological order. Both return an empty slice
// when there is nothing to do; exhaustion is not an error.
//
// History does not touch text itself. The caller applies the returned edits
// and uses their CursorIndex to reposition cursors.
package history
