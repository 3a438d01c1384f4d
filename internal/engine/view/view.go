package view

import (
	"strings"

	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
)

// View is one client's perspective onto a document.
type View struct {
	target   Target
	document document.Handle
	cursors  *cursor.Collection
}

// New creates a view with a single cursor at the document start.
func New(target Target, doc document.Handle) *View {
	return &View{
		target:   target,
		document: doc,
		cursors:  cursor.NewCollection(),
	}
}

// Target returns the client owning the view.
func (v *View) Target() Target {
	return v.target
}

// Document returns the handle of the viewed document.
func (v *View) Document() document.Handle {
	return v.document
}

// Cursors returns the view's cursors.
func (v *View) Cursors() *cursor.Collection {
	return v.cursors
}

// CloneWithTarget returns a view of the same document for another client,
// starting with a copy of this view's cursors.
func (v *View) CloneWithTarget(target Target) *View {
	return &View{
		target:   target,
		document: v.document,
		cursors:  v.cursors.Clone(),
	}
}

// CommitEdits closes the document's current undo group.
func (v *View) CommitEdits(docs *document.Collection) {
	if doc, ok := docs.Get(v.document); ok {
		doc.CommitEdits()
	}
}

// SelectionText returns the text selected by all cursors, in cursor order.
// A line break separates selections that start on a later line than the
// previous one ended. Returns false if the document is gone.
func (v *View) SelectionText(docs *document.Collection) (string, bool) {
	doc, ok := docs.Get(v.document)
	if !ok {
		return "", false
	}
	content := doc.Content()

	var sb strings.Builder
	for i, c := range v.cursors.All() {
		r := c.Range()
		if i > 0 {
			prev, _ := v.cursors.At(i - 1)
			if r.From.Line > prev.Range().To.Line {
				sb.WriteByte('\n')
			}
		}
		content.AppendRangeText(r, &sb)
	}
	return sb.String(), true
}
