package document

import (
	"path/filepath"

	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/history"
)

// Document is a buffer's text together with its undo history.
type Document struct {
	// Path is the file path the text came from (empty for scratch buffers).
	Path string

	// Name is the display name (base of Path or "Untitled").
	Name string

	content *buffer.Content
	history *history.History

	modified bool
	version  int64
}

// Option configures a Document.
type Option func(*Document)

// WithMaxHistory limits the number of undo groups kept.
func WithMaxHistory(n int) Option {
	return func(d *Document) {
		d.history.SetMaxEntries(n)
	}
}

// New creates a document over content.
func New(path string, content *buffer.Content, opts ...Option) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}
	if content == nil {
		content = buffer.NewContent()
	}

	d := &Document{
		Path:    path,
		Name:    name,
		content: content,
		history: history.NewHistory(history.DefaultMaxEntries),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Content returns the document text. Callers must not mutate it directly.
func (d *Document) Content() *buffer.Content {
	return d.content
}

// History returns the document's edit history.
func (d *Document) History() *history.History {
	return d.history
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.content.Text()
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the document changed since SetModified(false).
func (d *Document) IsModified() bool {
	return d.modified
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// Version returns a counter incremented on every text change.
func (d *Document) Version() int64 {
	return d.version
}

func (d *Document) touch() {
	d.modified = true
	d.version++
}

// InsertText inserts text at pos on behalf of the cursor at cursorIndex and
// returns the range the text now occupies.
func (d *Document) InsertText(pos buffer.Position, text string, cursorIndex int) buffer.Range {
	r := d.content.InsertText(pos, text)
	if r.IsEmpty() {
		return r
	}

	d.history.Record(buffer.Edit{
		Kind:        buffer.EditInsert,
		Range:       r,
		Text:        d.content.TextRange(r),
		CursorIndex: cursorIndex,
	})
	d.touch()
	return r
}

// DeleteRange removes the text in r on behalf of the cursor at cursorIndex
// and returns the range that was removed.
func (d *Document) DeleteRange(r buffer.Range, cursorIndex int) buffer.Range {
	r = d.content.SaturateRange(r)
	if r.IsEmpty() {
		return r
	}

	text := d.content.TextRange(r)
	removed := d.content.DeleteRange(r)
	d.history.Record(buffer.Edit{
		Kind:        buffer.EditDelete,
		Range:       removed,
		Text:        text,
		CursorIndex: cursorIndex,
	})
	d.touch()
	return removed
}

// CommitEdits closes the current undo group.
func (d *Document) CommitEdits() {
	d.history.Commit()
}

// Undo reverts the most recent undo group and returns the applied edits in
// application order. Returns an empty slice when there is nothing to undo.
func (d *Document) Undo() []buffer.Edit {
	return d.replay(d.history.Undo())
}

// Redo reapplies the most recently undone group and returns the applied
// edits in application order.
func (d *Document) Redo() []buffer.Edit {
	return d.replay(d.history.Redo())
}

func (d *Document) replay(edits []buffer.Edit) []buffer.Edit {
	for _, e := range edits {
		e.Apply(d.content)
	}
	if len(edits) > 0 {
		d.touch()
	}
	return edits
}
