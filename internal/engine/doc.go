// Package engine provides the editing core of the splitview editor server.
//
// The engine package is the facade over a set of single threaded
// sub-packages. Together they keep every client's view of a shared buffer
// positionally consistent across edits, undo and redo.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line based text storage with byte addressed positions
//   - history: undo groups of recorded edits
//   - document: a buffer with its history, and the collection of open buffers
//   - cursor: cursors, fixups and the normalized cursor collection
//   - view: per client views, movement, and the cross view edit entry points
//
// # Thread Safety
//
// The sub-packages take no locks. Engine serializes every call with a
// mutex, so a server may call it from several connection goroutines.
// Values returned by Buffer and View must not be used concurrently with
// other engine calls.
//
// # Basic Usage
//
//	e := engine.New()
//	buf := e.OpenBuffer("main.go", "package main\n")
//	v, _ := e.OpenView(view.LocalTarget, buf)
//
//	e.MoveCursors(v, view.End(), engine.PositionAndAnchor)
//	e.InsertText(v, " // entry point")
//	e.CommitEdits(v)
//
//	e.Undo(v)
//
// # Shared Buffers
//
// Every client holds its own view on a buffer. An edit made through one
// view moves the cursors of every other view on the same buffer:
//
//	a, _ := e.OpenView(view.LocalTarget, buf)
//	b, _ := e.OpenView(view.NewTarget(), buf)
//	e.InsertText(a, "x") // cursors of b after the insertion shift right
//
// # Stale Handles
//
// Edits and movements on a handle that no longer refers to an open view
// are dropped and logged at debug level. Queries return ErrViewNotFound or
// ErrBufferNotFound instead.
package engine
