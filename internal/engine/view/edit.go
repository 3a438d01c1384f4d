package view

import (
	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
)

// InsertTextAtPosition inserts text at pos on behalf of the cursor at
// cursorIndex of view h. An out of range index is clamped to the view's
// cursors.
func (c *Collection) InsertTextAtPosition(docs *document.Collection, h Handle, pos buffer.Position, text string, cursorIndex int) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}

	c.fixups = c.fixups[:0]
	r := doc.InsertText(pos, text, clampIndex(cursorIndex, v.cursors.Len()))
	if !r.IsEmpty() {
		c.fixups = append(c.fixups, cursor.InsertFixup(r))
	}
	c.fixDocumentCursors(v.document)
}

// InsertTextAtCursorPositions inserts text at the position of every cursor
// of view h.
func (c *Collection) InsertTextAtCursorPositions(docs *document.Collection, h Handle, text string) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}

	c.fixups = c.fixups[:0]
	cursors := v.cursors.All()
	for i := len(cursors) - 1; i >= 0; i-- {
		r := doc.InsertText(cursors[i].Position, text, i)
		if !r.IsEmpty() {
			c.fixups = append(c.fixups, cursor.InsertFixup(r))
		}
	}
	c.fixDocumentCursors(v.document)
}

// DeleteInRange deletes r on behalf of the cursor at cursorIndex of view h.
// An out of range index is clamped to the view's cursors.
func (c *Collection) DeleteInRange(docs *document.Collection, h Handle, r buffer.Range, cursorIndex int) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}

	c.fixups = c.fixups[:0]
	removed := doc.DeleteRange(r, clampIndex(cursorIndex, v.cursors.Len()))
	if !removed.IsEmpty() {
		c.fixups = append(c.fixups, cursor.DeleteFixup(removed))
	}
	c.fixDocumentCursors(v.document)
}

// DeleteInCursorRanges deletes the text selected by every cursor of view h.
func (c *Collection) DeleteInCursorRanges(docs *document.Collection, h Handle) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}

	c.fixups = c.fixups[:0]
	cursors := v.cursors.All()
	for i := len(cursors) - 1; i >= 0; i-- {
		removed := doc.DeleteRange(cursors[i].Range(), i)
		if !removed.IsEmpty() {
			c.fixups = append(c.fixups, cursor.DeleteFixup(removed))
		}
	}
	c.fixDocumentCursors(v.document)
}

// ApplyCompletion replaces the identifier ending at every cursor of view h
// with completion. Cursors not preceded by an identifier get completion
// inserted at their position.
func (c *Collection) ApplyCompletion(docs *document.Collection, h Handle, completion string) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}
	content := doc.Content()

	c.fixups = c.fixups[:0]
	cursors := v.cursors.All()
	for i := len(cursors) - 1; i >= 0; i-- {
		pos := content.SaturatePosition(cursors[i].Position)

		at := pos
		if pos.Column > 0 {
			word := content.WordAt(buffer.Position{Line: pos.Line, Column: pos.Column - 1})
			if word.Kind == buffer.WordIdentifier {
				at = word.Position
				doc.DeleteRange(buffer.RangeBetween(at, pos), i)
			}
		}

		inserted := doc.InsertText(at, completion, i)

		// One net fixup per cursor, growing or shrinking the text at pos
		switch end := inserted.To; {
		case end.Before(pos):
			c.fixups = append(c.fixups, cursor.DeleteFixup(buffer.NewRange(end, pos)))
		case pos.Before(end):
			c.fixups = append(c.fixups, cursor.InsertFixup(buffer.NewRange(pos, end)))
		}
	}
	c.fixDocumentCursors(v.document)
}

// Undo reverts the last undo group of the document behind view h.
func (c *Collection) Undo(docs *document.Collection, h Handle) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}
	c.applyEdits(h, v, doc.Undo())
}

// Redo reapplies the last undone group of the document behind view h.
func (c *Collection) Redo(docs *document.Collection, h Handle) {
	v, doc, ok := c.resolve(docs, h)
	if !ok {
		return
	}
	c.applyEdits(h, v, doc.Redo())
}

// applyEdits fixes up the sibling views of issuer for each replayed edit and
// rebuilds the issuer's cursors where the edits happened.
func (c *Collection) applyEdits(h Handle, issuer *View, edits []buffer.Edit) {
	if len(edits) == 0 {
		return
	}

	// Recorded indices come from the document, which other code may have
	// written to directly
	limit := len(edits) + issuer.cursors.Len()

	var (
		positions []buffer.Position
		present   []bool
	)
	for _, e := range edits {
		i := clampIndex(e.CursorIndex, limit)
		if i >= len(positions) {
			positions = append(positions, make([]buffer.Position, i+1-len(positions))...)
			present = append(present, make([]bool, i+1-len(present))...)
		}

		var (
			fix cursor.Fixup
			at  buffer.Position
		)
		switch e.Kind {
		case buffer.EditInsert:
			fix, at = cursor.InsertFixup(e.Range), e.Range.To
		case buffer.EditDelete:
			fix, at = cursor.DeleteFixup(e.Range), e.Range.From
		}

		// Positions recorded for earlier edits move with the text
		for j := range positions {
			if present[j] {
				positions[j] = fix.Apply(cursor.NewCursor(positions[j])).Position
			}
		}
		positions[i], present[i] = at, true

		for vh, v := range c.ForDocument(issuer.document) {
			if vh == h {
				continue
			}
			v.cursors.Mutate(func(g *cursor.Guard) {
				for j, cur := range g.Cursors() {
					g.Cursors()[j] = fix.Apply(cur)
				}
			})
		}
	}

	issuer.cursors.Mutate(func(g *cursor.Guard) {
		g.Clear()
		for i, pos := range positions {
			if present[i] {
				g.Add(cursor.NewCursor(pos))
			}
		}
	})
}

// clampIndex limits i to [0, n-1].
func clampIndex(i, n int) int {
	return max(min(i, n-1), 0)
}
