package replay

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
)

// Script is a scripted editing session.
type Script struct {
	Buffers []BufferSpec `yaml:"buffers"`
	Views   []ViewSpec   `yaml:"views"`
	Steps   []Step       `yaml:"steps"`
}

// BufferSpec declares a buffer opened before the steps run.
// Name defaults to Path.
type BufferSpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Text string `yaml:"text"`
}

// ViewSpec declares a view opened before the steps run.
type ViewSpec struct {
	Name   string `yaml:"name"`
	Buffer string `yaml:"buffer"`
	Target string `yaml:"target"`
}

// Step is one action. Which fields are read depends on Action.
type Step struct {
	// View defaults to the first declared view.
	View   string `yaml:"view"`
	Action string `yaml:"action"`

	Text    string       `yaml:"text"`
	Motion  string       `yaml:"motion"`
	Count   *int         `yaml:"count"`
	Extend  bool         `yaml:"extend"`
	At      *Point       `yaml:"at"`
	Range   *RangeSpec   `yaml:"range"`
	Cursor  int          `yaml:"cursor"`
	Cursors []CursorSpec `yaml:"cursors"`
	Buffer  string       `yaml:"buffer"`
	As      string       `yaml:"as"`
	Target  string       `yaml:"target"`
}

// Point is a position written as [line, column].
type Point buffer.Position

// Position converts p to a buffer position.
func (p Point) Position() buffer.Position {
	return buffer.Position(p)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: position must be [line, column]: %w", value.Line, ErrInvalidScript)
	}
	p.Line, p.Column = pair[0], pair[1]
	return nil
}

// MarshalYAML implements yaml.Marshaler. Points are written in flow style.
func (p Point) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Line)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Column)},
		},
	}, nil
}

// RangeSpec is a range between two points.
type RangeSpec struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Range converts r to a buffer range.
func (r RangeSpec) Range() buffer.Range {
	return buffer.RangeBetween(r.From.Position(), r.To.Position())
}

// CursorSpec is a cursor. A missing anchor makes it a caret.
type CursorSpec struct {
	Anchor   *Point `yaml:"anchor"`
	Position Point  `yaml:"position"`
}

// Cursor converts c to a cursor.
func (c CursorSpec) Cursor() cursor.Cursor {
	if c.Anchor == nil {
		return cursor.NewCursor(c.Position.Position())
	}
	return cursor.NewSelection(c.Anchor.Position(), c.Position.Position())
}

// Decode reads a YAML script. Unknown fields are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	return &s, nil
}
