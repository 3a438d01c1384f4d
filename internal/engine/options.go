package engine

import (
	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/history"
	"github.com/dshills/splitview/internal/logging"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxUndoEntries sets the maximum number of undo groups kept per buffer.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithLineEnding forces the line ending of buffers opened by the engine.
// Without it the line ending is detected from the initial text.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.lineEnding = ending
		e.fixedLineEnding = true
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
