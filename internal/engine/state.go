package engine

// BufferState describes an open buffer.
type BufferState struct {
	Handle    BufferHandle
	Path      string
	Name      string
	Text      string
	Version   int64
	Modified  bool
	UndoCount int
	RedoCount int
}

// ViewState describes an open view.
type ViewState struct {
	Handle    ViewHandle
	Target    Target
	Buffer    BufferHandle
	Cursors   []Cursor
	MainIndex int
}

// State is a point in time copy of everything the engine holds.
type State struct {
	Buffers []BufferState
	Views   []ViewState
}

// State returns a copy of every open buffer and view, ordered by handle.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	var s State
	for h, doc := range e.docs.All() {
		hist := doc.History()
		s.Buffers = append(s.Buffers, BufferState{
			Handle:    h,
			Path:      doc.Path,
			Name:      doc.Name,
			Text:      doc.Text(),
			Version:   doc.Version(),
			Modified:  doc.IsModified(),
			UndoCount: hist.UndoCount(),
			RedoCount: hist.RedoCount(),
		})
	}
	for h, v := range e.views.All() {
		s.Views = append(s.Views, ViewState{
			Handle:    h,
			Target:    v.Target(),
			Buffer:    v.Document(),
			Cursors:   v.Cursors().All(),
			MainIndex: v.Cursors().MainIndex(),
		})
	}
	return s
}
