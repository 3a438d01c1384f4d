package replay

import (
	"errors"
	"fmt"
)

// Errors returned while decoding or running scripts.
var (
	// ErrInvalidScript indicates a script is malformed.
	ErrInvalidScript = errors.New("invalid script")

	// ErrUnknownAction indicates a step names an action that does not exist.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownBuffer indicates a name does not refer to an open buffer.
	ErrUnknownBuffer = errors.New("unknown buffer")

	// ErrUnknownView indicates a name does not refer to an open view.
	ErrUnknownView = errors.New("unknown view")

	// ErrDuplicateName indicates a buffer or view name is used twice.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnknownFormat indicates an unsupported dump format.
	ErrUnknownFormat = errors.New("unknown format")
)

// StepError reports the step a script failed at.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
