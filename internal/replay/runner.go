package replay

import (
	"context"
	"fmt"

	"github.com/dshills/splitview/internal/engine"
	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/view"
	"github.com/dshills/splitview/internal/logging"
)

// Runner runs scripts against an engine and remembers the names the
// scripts gave to buffers and views.
type Runner struct {
	engine *engine.Engine
	logger *logging.Logger

	buffers     map[string]engine.BufferHandle
	bufferNames map[engine.BufferHandle]string
	views       map[string]engine.ViewHandle
	viewNames   map[engine.ViewHandle]string
	targets     map[string]view.Target
	defaultView string
}

// NewRunner creates a runner driving e.
func NewRunner(e *engine.Engine, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{
		engine:      e,
		logger:      logger.WithComponent("replay"),
		buffers:     make(map[string]engine.BufferHandle),
		bufferNames: make(map[engine.BufferHandle]string),
		views:       make(map[string]engine.ViewHandle),
		viewNames:   make(map[engine.ViewHandle]string),
		targets:     make(map[string]view.Target),
	}
}

// Run opens the script's buffers and views and runs its steps in order.
// It stops at the first failing step.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	for _, b := range s.Buffers {
		if err := r.openBuffer(b); err != nil {
			return err
		}
	}
	for _, v := range s.Views {
		if err := r.openView(v); err != nil {
			return err
		}
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.logger.Debug("step %d: %s on %q", i, step.Action, step.View)
		if err := r.runStep(step); err != nil {
			return &StepError{Index: i, Action: step.Action, Err: err}
		}
	}
	return nil
}

func (r *Runner) openBuffer(b BufferSpec) error {
	name := b.Name
	if name == "" {
		name = b.Path
	}
	if name == "" {
		return fmt.Errorf("buffer without name or path: %w", ErrInvalidScript)
	}
	if _, ok := r.buffers[name]; ok {
		return fmt.Errorf("buffer %q: %w", name, ErrDuplicateName)
	}

	h := r.engine.OpenBuffer(b.Path, b.Text)
	r.buffers[name] = h
	r.bufferNames[h] = name
	return nil
}

func (r *Runner) openView(v ViewSpec) error {
	if v.Name == "" {
		return fmt.Errorf("view without name: %w", ErrInvalidScript)
	}
	if _, ok := r.views[v.Name]; ok {
		return fmt.Errorf("view %q: %w", v.Name, ErrDuplicateName)
	}
	buf, ok := r.buffers[v.Buffer]
	if !ok {
		return fmt.Errorf("view %q: %w %q", v.Name, ErrUnknownBuffer, v.Buffer)
	}

	h, err := r.engine.OpenView(r.target(v.Target), buf)
	if err != nil {
		return fmt.Errorf("view %q: %w", v.Name, err)
	}
	r.registerView(v.Name, h)
	return nil
}

func (r *Runner) registerView(name string, h engine.ViewHandle) {
	r.views[name] = h
	if _, ok := r.viewNames[h]; !ok {
		r.viewNames[h] = name
	}
	if r.defaultView == "" {
		r.defaultView = name
	}
}

// target resolves a target label. Labels that are not "local" or a UUID
// get a fresh identity the first time they are seen.
func (r *Runner) target(label string) view.Target {
	if t, err := view.ParseTarget(label); err == nil {
		return t
	}
	if t, ok := r.targets[label]; ok {
		return t
	}
	t := view.NewTarget()
	r.targets[label] = t
	return t
}

func (r *Runner) viewHandle(name string) (engine.ViewHandle, error) {
	if name == "" {
		name = r.defaultView
	}
	h, ok := r.views[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownView, name)
	}
	return h, nil
}

// prune forgets names whose buffer or view has been closed, so a recycled
// handle is never reached through a stale name.
func (r *Runner) prune() {
	for name, h := range r.buffers {
		if _, ok := r.engine.Buffer(h); !ok {
			delete(r.buffers, name)
			delete(r.bufferNames, h)
		}
	}
	for name, h := range r.views {
		if _, ok := r.engine.View(h); !ok {
			delete(r.views, name)
			delete(r.viewNames, h)
		}
	}
}

func (r *Runner) closeBuffer(name string) error {
	buf, ok := r.buffers[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownBuffer, name)
	}
	if err := r.engine.CloseBuffer(buf); err != nil {
		return err
	}
	r.prune()
	return nil
}

func (r *Runner) runStep(step Step) error {
	// Closing a buffer is the only action without a view
	if step.Action == "close-buffer" {
		return r.closeBuffer(step.Buffer)
	}

	h, err := r.viewHandle(step.View)
	if err != nil {
		return err
	}

	switch step.Action {
	case "set-cursors":
		cursors := make([]cursor.Cursor, len(step.Cursors))
		for i, c := range step.Cursors {
			cursors[i] = c.Cursor()
		}
		r.engine.SetCursors(h, cursors...)

	case "move":
		motion, err := view.ParseMotion(step.Motion)
		if err != nil {
			return err
		}
		count := 1
		if step.Count != nil {
			count = *step.Count
		}
		kind := engine.PositionAndAnchor
		if step.Extend {
			kind = engine.PositionOnly
		}
		r.engine.MoveCursors(h, view.Movement{Motion: motion, Count: count}, kind)

	case "insert":
		r.engine.InsertText(h, step.Text)

	case "insert-at":
		if step.At == nil {
			return fmt.Errorf("insert-at needs at: %w", ErrInvalidScript)
		}
		r.engine.InsertTextAt(h, step.At.Position(), step.Text, step.Cursor)

	case "delete":
		r.engine.DeleteSelections(h)

	case "delete-range":
		if step.Range == nil {
			return fmt.Errorf("delete-range needs range: %w", ErrInvalidScript)
		}
		r.engine.DeleteRange(h, step.Range.Range(), step.Cursor)

	case "complete":
		r.engine.ApplyCompletion(h, step.Text)

	case "commit":
		r.engine.CommitEdits(h)

	case "undo":
		r.engine.Undo(h)

	case "redo":
		r.engine.Redo(h)

	case "close-view":
		if err := r.engine.CloseView(h); err != nil {
			return err
		}
		r.prune()

	case "clone-view":
		if step.As == "" {
			return fmt.Errorf("clone-view needs as: %w", ErrInvalidScript)
		}
		if _, ok := r.views[step.As]; ok {
			return fmt.Errorf("view %q: %w", step.As, ErrDuplicateName)
		}
		clone, err := r.engine.CloneView(h, r.target(step.Target))
		if err != nil {
			return err
		}
		r.registerView(step.As, clone)

	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
	}
	return nil
}
