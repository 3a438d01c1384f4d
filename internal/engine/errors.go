package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrBufferNotFound indicates a buffer handle or path does not refer to
	// an open buffer.
	ErrBufferNotFound = errors.New("buffer not found")

	// ErrViewNotFound indicates a view handle does not refer to an open view.
	ErrViewNotFound = errors.New("view not found")
)
