package document

import "iter"

// Handle identifies a document in a Collection.
type Handle int

// Collection owns the open documents.
type Collection struct {
	documents []*Document
	count     int
	onRemove  []func(Handle)
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add stores doc and returns its handle. Freed slots are reused.
func (c *Collection) Add(doc *Document) Handle {
	c.count++
	for i, d := range c.documents {
		if d == nil {
			c.documents[i] = doc
			return Handle(i)
		}
	}
	c.documents = append(c.documents, doc)
	return Handle(len(c.documents) - 1)
}

// Get returns the document for h.
func (c *Collection) Get(h Handle) (*Document, bool) {
	if h < 0 || int(h) >= len(c.documents) {
		return nil, false
	}
	doc := c.documents[h]
	return doc, doc != nil
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	return c.count
}

// All iterates over the documents in handle order.
func (c *Collection) All() iter.Seq2[Handle, *Document] {
	return func(yield func(Handle, *Document) bool) {
		for i, d := range c.documents {
			if d == nil {
				continue
			}
			if !yield(Handle(i), d) {
				return
			}
		}
	}
}

// FindWithPath returns the handle of the document opened from path.
func (c *Collection) FindWithPath(path string) (Handle, bool) {
	if path == "" {
		return 0, false
	}
	for h, d := range c.All() {
		if d.Path == path {
			return h, true
		}
	}
	return 0, false
}

// OnRemove registers fn to be called after a document is removed.
func (c *Collection) OnRemove(fn func(Handle)) {
	c.onRemove = append(c.onRemove, fn)
}

// Remove deletes the document for h and notifies observers.
// Returns false if h is stale.
func (c *Collection) Remove(h Handle) bool {
	if _, ok := c.Get(h); !ok {
		return false
	}

	c.documents[h] = nil
	c.count--
	for _, fn := range c.onRemove {
		fn(h)
	}
	return true
}

// RemoveWhere removes every document matching pred and returns how many
// were removed.
func (c *Collection) RemoveWhere(pred func(Handle, *Document) bool) int {
	var matched []Handle
	for h, d := range c.All() {
		if pred(h, d) {
			matched = append(matched, h)
		}
	}
	for _, h := range matched {
		c.Remove(h)
	}
	return len(matched)
}
