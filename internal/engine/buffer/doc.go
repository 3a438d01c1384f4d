// Package buffer provides the text storage of the editor engine: buffer
// content held as a sequence of lines, line/column positions and ranges,
// word classification and the edit records produced when text changes.
//
// The buffer package provides:
//
//   - Content, the only type allowed to mutate text bytes
//   - Position and Range, addressing text by line and byte column
//   - Saturation of caller-supplied positions to the current content
//   - Word classification (identifier, whitespace, symbol) and lazy word
//     sequences for word-wise motion
//   - Edit records consumed by undo/redo replay
//   - Line ending detection and normalization
//
// Basic usage:
//
//	c := buffer.NewContentFromString("Hello\nWorld")
//
//	// Insert text, getting back the range it now occupies
//	r := c.InsertText(buffer.NewPosition(0, 5), ",")  // [(0:5):(0:6))
//
//	// Delete it again
//	c.DeleteRange(r)
//
// Position Types:
//
// Columns are byte offsets into the UTF-8 encoding of a line, never character
// counts. Inserting "ç" at (0:0) yields the range [(0:0):(0:2)).
//
// Positions coming from outside the engine are never trusted: every
// operation saturates them against the current content first. Line indexes
// passed to Line and LineLen are the exception; they are a caller contract.
//
// Content is not safe for concurrent use. The engine mutates buffers from a
// single goroutine.
package buffer
