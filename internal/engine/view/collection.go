package view

import (
	"iter"

	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
)

// Handle identifies a view in a Collection.
type Handle int

// Collection owns every view and performs all text edits so that views
// sharing a document stay consistent.
type Collection struct {
	views []*View

	// Reused between edits
	fixups []cursor.Fixup
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add stores v and returns its handle. Freed slots are reused.
func (c *Collection) Add(v *View) Handle {
	for i, slot := range c.views {
		if slot == nil {
			c.views[i] = v
			return Handle(i)
		}
	}
	c.views = append(c.views, v)
	return Handle(len(c.views) - 1)
}

// Get returns the view for h.
func (c *Collection) Get(h Handle) (*View, bool) {
	if h < 0 || int(h) >= len(c.views) {
		return nil, false
	}
	v := c.views[h]
	return v, v != nil
}

// Len returns the number of views.
func (c *Collection) Len() int {
	n := 0
	for _, v := range c.views {
		if v != nil {
			n++
		}
	}
	return n
}

// All iterates over the views in handle order.
func (c *Collection) All() iter.Seq2[Handle, *View] {
	return func(yield func(Handle, *View) bool) {
		for i, v := range c.views {
			if v == nil {
				continue
			}
			if !yield(Handle(i), v) {
				return
			}
		}
	}
}

// Remove deletes the view for h. Returns false if h is stale.
func (c *Collection) Remove(h Handle) bool {
	if _, ok := c.Get(h); !ok {
		return false
	}
	c.views[h] = nil
	return true
}

// RemoveWhere removes every view matching pred, then removes the documents
// that no remaining view looks at. Returns the number of views removed.
func (c *Collection) RemoveWhere(docs *document.Collection, pred func(Handle, *View) bool) int {
	removed := 0
	for h, v := range c.All() {
		if pred(h, v) {
			c.views[h] = nil
			removed++
		}
	}

	docs.RemoveWhere(func(dh document.Handle, _ *document.Document) bool {
		return !c.references(dh)
	})
	return removed
}

// RemoveDocumentViews removes every view of doc. It is meant to be
// registered with document.Collection.OnRemove.
func (c *Collection) RemoveDocumentViews(doc document.Handle) int {
	removed := 0
	for h, v := range c.All() {
		if v.document == doc {
			c.views[h] = nil
			removed++
		}
	}
	return removed
}

// HandleFromDocument returns the view target has onto doc, creating it if
// needed.
func (c *Collection) HandleFromDocument(target Target, doc document.Handle) Handle {
	for h, v := range c.All() {
		if v.document == doc && v.target == target {
			return h
		}
	}
	return c.Add(New(target, doc))
}

// ForDocument iterates over the views of doc.
func (c *Collection) ForDocument(doc document.Handle) iter.Seq2[Handle, *View] {
	return func(yield func(Handle, *View) bool) {
		for h, v := range c.All() {
			if v.document != doc {
				continue
			}
			if !yield(h, v) {
				return
			}
		}
	}
}

func (c *Collection) references(doc document.Handle) bool {
	for range c.ForDocument(doc) {
		return true
	}
	return false
}

// resolve returns the view for h and its document.
func (c *Collection) resolve(docs *document.Collection, h Handle) (*View, *document.Document, bool) {
	v, ok := c.Get(h)
	if !ok {
		return nil, nil, false
	}
	doc, ok := docs.Get(v.document)
	if !ok {
		return nil, nil, false
	}
	return v, doc, true
}

// fixDocumentCursors applies the collected fixups to every view of doc.
func (c *Collection) fixDocumentCursors(doc document.Handle) {
	if len(c.fixups) == 0 {
		return
	}
	for _, v := range c.ForDocument(doc) {
		v.cursors.Mutate(func(g *cursor.Guard) {
			cursor.ApplyAll(g.Cursors(), c.fixups)
		})
	}
}
