package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
	"github.com/dshills/splitview/internal/engine/view"
	"github.com/dshills/splitview/internal/logging"
)

// Re-exported types for convenience.
type (
	Position     = buffer.Position
	Range        = buffer.Range
	LineEnding   = buffer.LineEnding
	Cursor       = cursor.Cursor
	BufferHandle = document.Handle
	ViewHandle   = view.Handle
	Target       = view.Target
	Movement     = view.Movement
	MovementKind = view.MovementKind
)

// Re-exported constants.
const (
	PositionAndAnchor = view.PositionAndAnchor
	PositionOnly      = view.PositionOnly
)

// Engine ties open buffers to the views clients hold on them.
//
// The buffer, cursor and view packages are single threaded. Engine
// serializes every call with a mutex so a server can drive it from several
// connection goroutines.
type Engine struct {
	mu sync.Mutex

	docs  *document.Collection
	views *view.Collection

	// Configuration
	maxUndoEntries  int
	lineEnding      buffer.LineEnding
	fixedLineEnding bool
	logger          *logging.Logger
}

// New creates an Engine with no open buffers.
func New(opts ...Option) *Engine {
	e := &Engine{
		docs:           document.NewCollection(),
		views:          view.NewCollection(),
		maxUndoEntries: DefaultMaxUndoEntries,
		lineEnding:     buffer.LineEndingLF,
		logger:         logging.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("engine")

	// Views never outlive their buffer
	e.docs.OnRemove(func(h document.Handle) {
		n := e.views.RemoveDocumentViews(h)
		e.logger.Debug("removed %d views of buffer %d", n, h)
	})

	return e
}

func (e *Engine) contentOptions() []buffer.Option {
	if e.fixedLineEnding {
		return []buffer.Option{buffer.WithLineEnding(e.lineEnding)}
	}
	return []buffer.Option{buffer.WithDetectedLineEnding()}
}

func (e *Engine) addDocument(path string, content *buffer.Content) BufferHandle {
	doc := document.New(path, content, document.WithMaxHistory(e.maxUndoEntries))
	h := e.docs.Add(doc)
	e.logger.Info("opened buffer %d (%s)", h, doc.Name)
	return h
}

// ============================================================================
// Buffers
// ============================================================================

// OpenBuffer opens a buffer holding text. An empty path opens a scratch
// buffer.
func (e *Engine) OpenBuffer(path, text string) BufferHandle {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.addDocument(path, buffer.NewContentFromString(text, e.contentOptions()...))
}

// OpenBufferFromReader opens a buffer with the contents of r.
func (e *Engine) OpenBufferFromReader(path string, r io.Reader) (BufferHandle, error) {
	content, err := buffer.NewContentFromReader(r, e.contentOptions()...)
	if err != nil {
		return 0, fmt.Errorf("opening buffer %q: %w", path, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.addDocument(path, content), nil
}

// CloseBuffer closes a buffer and every view on it.
func (e *Engine) CloseBuffer(h BufferHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.docs.Remove(h) {
		return fmt.Errorf("closing buffer %d: %w", h, ErrBufferNotFound)
	}
	e.logger.Info("closed buffer %d", h)
	return nil
}

// Buffer returns the document behind h.
// The document must not be used concurrently with other engine calls.
func (e *Engine) Buffer(h BufferHandle) (*document.Document, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.docs.Get(h)
}

// FindBuffer returns the open buffer with the given path.
func (e *Engine) FindBuffer(path string) (BufferHandle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.docs.FindWithPath(path)
}

// Text returns the full text of a buffer.
func (e *Engine) Text(h BufferHandle) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, ok := e.docs.Get(h)
	if !ok {
		return "", fmt.Errorf("reading buffer %d: %w", h, ErrBufferNotFound)
	}
	return doc.Text(), nil
}

// ============================================================================
// Views
// ============================================================================

// OpenView returns the view target holds on a buffer, creating it when the
// target has none yet.
func (e *Engine) OpenView(target Target, buf BufferHandle) (ViewHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.docs.Get(buf); !ok {
		return 0, fmt.Errorf("opening view on buffer %d: %w", buf, ErrBufferNotFound)
	}
	return e.views.HandleFromDocument(target, buf), nil
}

// ViewFor returns the view target holds on the buffer open at path.
func (e *Engine) ViewFor(target Target, path string) (ViewHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf, ok := e.docs.FindWithPath(path)
	if !ok {
		return 0, fmt.Errorf("opening view on %q: %w", path, ErrBufferNotFound)
	}
	return e.views.HandleFromDocument(target, buf), nil
}

// CloneView opens a view for target on the same buffer as h with a copy of
// its cursors.
func (e *Engine) CloneView(h ViewHandle, target Target) (ViewHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.views.Get(h)
	if !ok {
		return 0, fmt.Errorf("cloning view %d: %w", h, ErrViewNotFound)
	}
	return e.views.Add(v.CloneWithTarget(target)), nil
}

// CloseView closes a single view. Its buffer stays open.
func (e *Engine) CloseView(h ViewHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.views.Remove(h) {
		return fmt.Errorf("closing view %d: %w", h, ErrViewNotFound)
	}
	return nil
}

// CloseTarget closes every view held by target and then every buffer that
// is no longer viewed. It returns the number of views closed.
func (e *Engine) CloseTarget(target Target) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.views.RemoveWhere(e.docs, func(_ ViewHandle, v *view.View) bool {
		return v.Target() == target
	})
	e.logger.Info("closed %d views of target %s", n, target)
	return n
}

// View returns the view behind h.
// The view must not be used concurrently with other engine calls.
func (e *Engine) View(h ViewHandle) (*view.View, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.views.Get(h)
}

// Cursors returns a copy of the cursors of a view together with the index
// of the main cursor.
func (e *Engine) Cursors(h ViewHandle) ([]Cursor, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.views.Get(h)
	if !ok {
		return nil, 0, fmt.Errorf("reading cursors of view %d: %w", h, ErrViewNotFound)
	}
	return v.Cursors().All(), v.Cursors().MainIndex(), nil
}

// SelectionText returns the selected text of every cursor in a view.
func (e *Engine) SelectionText(h ViewHandle) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.views.Get(h)
	if !ok {
		return "", fmt.Errorf("reading selection of view %d: %w", h, ErrViewNotFound)
	}
	text, ok := v.SelectionText(e.docs)
	if !ok {
		return "", fmt.Errorf("reading selection of view %d: %w", h, ErrBufferNotFound)
	}
	return text, nil
}

// ============================================================================
// Cursor operations
// ============================================================================

// view resolves h for an operation that silently ignores stale handles.
// Must be called with e.mu held.
func (e *Engine) view(h ViewHandle, op string) (*view.View, bool) {
	v, ok := e.views.Get(h)
	if !ok {
		e.logger.Debug("dropping %s on stale view %d", op, h)
	}
	return v, ok
}

// SetCursors replaces the cursors of a view. The first cursor becomes main.
func (e *Engine) SetCursors(h ViewHandle, cursors ...Cursor) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.view(h, "set cursors"); ok {
		v.SetCursors(e.docs, cursors)
	}
}

// MoveCursors moves every cursor of a view.
func (e *Engine) MoveCursors(h ViewHandle, m Movement, kind MovementKind) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.view(h, "move"); ok {
		v.MoveCursors(e.docs, m, kind)
	}
}

// ============================================================================
// Edits
// ============================================================================

// InsertText inserts text at every cursor of a view.
func (e *Engine) InsertText(h ViewHandle, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "insert"); ok {
		e.views.InsertTextAtCursorPositions(e.docs, h, text)
	}
}

// InsertTextAt inserts text at pos on behalf of the cursor at cursorIndex.
func (e *Engine) InsertTextAt(h ViewHandle, pos Position, text string, cursorIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "insert"); ok {
		e.views.InsertTextAtPosition(e.docs, h, pos, text, cursorIndex)
	}
}

// DeleteSelections deletes the selection of every cursor of a view.
func (e *Engine) DeleteSelections(h ViewHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "delete"); ok {
		e.views.DeleteInCursorRanges(e.docs, h)
	}
}

// DeleteRange deletes r on behalf of the cursor at cursorIndex.
func (e *Engine) DeleteRange(h ViewHandle, r Range, cursorIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "delete"); ok {
		e.views.DeleteInRange(e.docs, h, r, cursorIndex)
	}
}

// ApplyCompletion replaces the identifier before every cursor with
// completion.
func (e *Engine) ApplyCompletion(h ViewHandle, completion string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "completion"); ok {
		e.views.ApplyCompletion(e.docs, h, completion)
	}
}

// CommitEdits closes the current undo group of the view's buffer.
func (e *Engine) CommitEdits(h ViewHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.view(h, "commit"); ok {
		v.CommitEdits(e.docs)
	}
}

// Undo reverts the most recent undo group of the view's buffer.
func (e *Engine) Undo(h ViewHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "undo"); ok {
		e.views.Undo(e.docs, h)
	}
}

// Redo reapplies the most recently undone group of the view's buffer.
func (e *Engine) Redo(h ViewHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.view(h, "redo"); ok {
		e.views.Redo(e.docs, h)
	}
}
