// Package view provides per-client views onto documents and keeps every view
// of a shared document consistent while its text changes.
//
// A View belongs to one client (its Target), looks at one document and owns a
// cursor.Collection. Many views may look at the same document.
//
// Collection owns the views and is the entry point for every text edit. Each
// edit operation follows the same steps:
//
//  1. Resolve the view and its document; a stale handle is a silent no-op.
//  2. Mutate the document, visiting cursors last to first so earlier edits do
//     not shift later positions, and collect one cursor.Fixup per edit.
//  3. Apply every fixup to every view of that document, the issuing view
//     included, inside each view's cursor guard.
//
// Undo and Redo replay history edits instead. Sibling views are fixed up per
// edit while the issuing view's cursors are rebuilt as empty cursors sitting
// where each replayed edit happened.
//
// Movement:
//
//	v.MoveCursors(docs, view.WordsForward(2), view.PositionAndAnchor)
//
// Column steps are rune aware and wrap across lines; all motions saturate at
// the edges of the document.
package view
