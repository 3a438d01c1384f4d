package history

import (
	"slices"
	"time"

	"github.com/dshills/splitview/internal/engine/buffer"
)

// DefaultMaxEntries is the number of undo groups kept when none is configured.
const DefaultMaxEntries = 1000

// group is one undo unit.
type group struct {
	edits     []buffer.Edit
	timestamp time.Time
}

// GroupInfo describes an undo unit without exposing its edits.
type GroupInfo struct {
	Edits     int
	Timestamp time.Time
}

// History manages undo/redo state for a buffer.
// It is not safe for concurrent use.
type History struct {
	undoStack []group
	redoStack []group

	// Edits recorded since the last commit
	pending []buffer.Edit

	maxEntries int
}

// NewHistory creates a new history manager.
// A non-positive maxEntries selects DefaultMaxEntries.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Record adds an applied edit to the pending group.
// Recording a new edit discards the redo stack.
func (h *History) Record(e buffer.Edit) {
	h.pending = append(h.pending, e)
	h.redoStack = nil
}

// Commit closes the pending group and pushes it onto the undo stack.
// Committing with nothing pending is a no-op.
func (h *History) Commit() {
	if len(h.pending) == 0 {
		return
	}

	h.undoStack = append(h.undoStack, group{
		edits:     h.pending,
		timestamp: time.Now(),
	})
	h.pending = nil

	// Enforce max entries
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = slices.Delete(h.undoStack, 0, excess)
	}
}

// HasPending reports whether edits were recorded since the last commit.
func (h *History) HasPending() bool {
	return len(h.pending) > 0
}

// Undo pops the most recent group and returns its inverted edits, newest
// first. The pending group is committed before undoing.
func (h *History) Undo() []buffer.Edit {
	h.Commit()
	if len(h.undoStack) == 0 {
		return []buffer.Edit{}
	}

	g := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, g)

	inverted := make([]buffer.Edit, 0, len(g.edits))
	for i := len(g.edits) - 1; i >= 0; i-- {
		inverted = append(inverted, g.edits[i].Invert())
	}
	return inverted
}

// Redo pops the most recently undone group and returns its edits in the order
// they were originally applied.
func (h *History) Redo() []buffer.Edit {
	if len(h.redoStack) == 0 {
		return []buffer.Edit{}
	}

	g := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, g)

	return slices.Clone(g.edits)
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0 || len(h.pending) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of committed undo groups.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo groups available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// UndoInfo describes the undo groups, most recent first.
func (h *History) UndoInfo() []GroupInfo {
	info := make([]GroupInfo, 0, len(h.undoStack))
	for i := len(h.undoStack) - 1; i >= 0; i-- {
		g := h.undoStack[i]
		info = append(info, GroupInfo{Edits: len(g.edits), Timestamp: g.timestamp})
	}
	return info
}

// Clear drops all history, including pending edits.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.pending = nil
}

// MaxEntries returns the maximum number of undo groups kept.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the limit, trimming the oldest groups if needed.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n

	if len(h.undoStack) > n {
		h.undoStack = slices.Delete(h.undoStack, 0, len(h.undoStack)-n)
	}
}
