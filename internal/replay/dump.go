package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/splitview/internal/engine"
)

// Format is an output format for dumps.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Dump is the state of an engine with handles replaced by script names.
type Dump struct {
	Buffers []BufferDump `yaml:"buffers"`
	Views   []ViewDump   `yaml:"views"`
}

// BufferDump describes one open buffer.
type BufferDump struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path,omitempty"`
	Text     string `yaml:"text"`
	Version  int64  `yaml:"version"`
	Modified bool   `yaml:"modified"`
	Undo     int    `yaml:"undo"`
	Redo     int    `yaml:"redo"`
}

// ViewDump describes one open view.
type ViewDump struct {
	Name    string       `yaml:"name"`
	Buffer  string       `yaml:"buffer"`
	Target  string       `yaml:"target"`
	Main    int          `yaml:"main"`
	Cursors []CursorDump `yaml:"cursors"`
}

// CursorDump describes one cursor.
type CursorDump struct {
	Anchor   Point `yaml:"anchor"`
	Position Point `yaml:"position"`
}

// Dump captures the current engine state.
func (r *Runner) Dump() Dump {
	state := r.engine.State()

	d := Dump{
		Buffers: make([]BufferDump, 0, len(state.Buffers)),
		Views:   make([]ViewDump, 0, len(state.Views)),
	}
	for _, b := range state.Buffers {
		d.Buffers = append(d.Buffers, BufferDump{
			Name:     r.bufferName(b.Handle),
			Path:     b.Path,
			Text:     b.Text,
			Version:  b.Version,
			Modified: b.Modified,
			Undo:     b.UndoCount,
			Redo:     b.RedoCount,
		})
	}
	for _, v := range state.Views {
		cursors := make([]CursorDump, len(v.Cursors))
		for i, c := range v.Cursors {
			cursors[i] = CursorDump{Anchor: Point(c.Anchor), Position: Point(c.Position)}
		}
		d.Views = append(d.Views, ViewDump{
			Name:    r.viewName(v.Handle),
			Buffer:  r.bufferName(v.Buffer),
			Target:  r.targetLabel(v.Target),
			Main:    v.MainIndex,
			Cursors: cursors,
		})
	}
	return d
}

func (r *Runner) bufferName(h engine.BufferHandle) string {
	if name, ok := r.bufferNames[h]; ok {
		return name
	}
	return fmt.Sprintf("#%d", h)
}

func (r *Runner) viewName(h engine.ViewHandle) string {
	if name, ok := r.viewNames[h]; ok {
		return name
	}
	return fmt.Sprintf("#%d", h)
}

// targetLabel returns the label a script used for t, so dumps do not
// depend on generated identities.
func (r *Runner) targetLabel(t engine.Target) string {
	for label, target := range r.targets {
		if target == t {
			return label
		}
	}
	return t.String()
}

// Write writes d to w in the given format.
func Write(w io.Writer, format Format, d Dump) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteYAML writes d as YAML.
func WriteYAML(w io.Writer, d Dump) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d Dump) error {
	data, err := d.JSON()
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

type field struct {
	path  string
	value any
}

func object(fields ...field) ([]byte, error) {
	var obj []byte
	for _, f := range fields {
		var err error
		obj, err = sjson.SetBytes(obj, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.path, err)
		}
	}
	return obj, nil
}

func pair(p Point) []int {
	return []int{p.Line, p.Column}
}

// JSON encodes d as compact JSON.
func (d Dump) JSON() ([]byte, error) {
	out := []byte(`{"buffers":[],"views":[]}`)

	for _, b := range d.Buffers {
		obj, err := object(
			field{"name", b.Name},
			field{"path", b.Path},
			field{"text", b.Text},
			field{"version", b.Version},
			field{"modified", b.Modified},
			field{"undo", b.Undo},
			field{"redo", b.Redo},
		)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "buffers.-1", obj); err != nil {
			return nil, fmt.Errorf("appending buffer %s: %w", b.Name, err)
		}
	}

	for _, v := range d.Views {
		obj, err := object(
			field{"name", v.Name},
			field{"buffer", v.Buffer},
			field{"target", v.Target},
			field{"main", v.Main},
			field{"cursors", []any{}},
		)
		if err != nil {
			return nil, err
		}
		for _, c := range v.Cursors {
			cur, err := object(
				field{"anchor", pair(c.Anchor)},
				field{"position", pair(c.Position)},
			)
			if err != nil {
				return nil, err
			}
			if obj, err = sjson.SetRawBytes(obj, "cursors.-1", cur); err != nil {
				return nil, fmt.Errorf("appending cursor: %w", err)
			}
		}
		if out, err = sjson.SetRawBytes(out, "views.-1", obj); err != nil {
			return nil, fmt.Errorf("appending view %s: %w", v.Name, err)
		}
	}

	return out, nil
}
