package buffer

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// Content is the text of one buffer stored as a sequence of lines.
// Lines never contain line ending characters; there is always at least one,
// possibly empty, line. Content is the only type that mutates text bytes.
type Content struct {
	lines      []string
	lineEnding LineEnding
	detect     bool
}

// NewContent creates an empty content with a single empty line.
func NewContent(opts ...Option) *Content {
	c := &Content{
		lines:      []string{""},
		lineEnding: LineEndingLF,
		detect:     true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewContentFromString creates a content holding s.
// Any mix of \n, \r\n and \r is accepted as a line break.
func NewContentFromString(s string, opts ...Option) *Content {
	c := NewContent(opts...)
	if c.detect {
		c.lineEnding = DetectLineEnding(s)
	}
	c.lines = splitLines(s)
	return c
}

// NewContentFromReader creates a content from an io.Reader.
func NewContentFromReader(r io.Reader, opts ...Option) (*Content, error) {
	// Read everything first so a \r\n split across reads is still one break
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return NewContentFromString(string(data), opts...), nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(s string) []string {
	return strings.Split(normalizeLineEndings(s), "\n")
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (c *Content) LineCount() int {
	return len(c.lines)
}

// Line returns the text of a line without its line ending.
// Passing an out-of-range index is a programming error and panics;
// saturate positions first.
func (c *Content) Line(line int) string {
	return c.lines[line]
}

// LineLen returns the byte length of a line.
func (c *Content) LineLen(line int) int {
	return len(c.lines[line])
}

// LastPosition returns the position just past the last byte of the content.
func (c *Content) LastPosition() Position {
	last := len(c.lines) - 1
	return Position{Line: last, Column: len(c.lines[last])}
}

// LineEnding returns the line ending used by Text.
func (c *Content) LineEnding() LineEnding {
	return c.lineEnding
}

// Text returns the full content joined with its line ending.
func (c *Content) Text() string {
	return strings.Join(c.lines, c.lineEnding.Sequence())
}

// TextRange returns the text in r. Line breaks are returned as \n.
func (c *Content) TextRange(r Range) string {
	var sb strings.Builder
	c.AppendRangeText(r, &sb)
	return sb.String()
}

// AppendRangeText appends the text in r to sb.
func (c *Content) AppendRangeText(r Range, sb *strings.Builder) {
	r = c.SaturateRange(r)
	if r.IsSingleLine() {
		sb.WriteString(c.lines[r.From.Line][r.From.Column:r.To.Column])
		return
	}

	sb.WriteString(c.lines[r.From.Line][r.From.Column:])
	for line := r.From.Line + 1; line < r.To.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(c.lines[line])
	}
	sb.WriteByte('\n')
	sb.WriteString(c.lines[r.To.Line][:r.To.Column])
}

// Coordinate Saturation

// SaturatePosition clamps p to the nearest valid position.
// A line past the end maps to the end of the content and the column is
// moved back onto a rune boundary.
func (c *Content) SaturatePosition(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(c.lines) {
		return c.LastPosition()
	}

	line := c.lines[p.Line]
	if p.Column < 0 {
		p.Column = 0
	}
	if p.Column > len(line) {
		p.Column = len(line)
	}
	for p.Column > 0 && p.Column < len(line) && !utf8.RuneStart(line[p.Column]) {
		p.Column--
	}
	return p
}

// SaturateRange saturates both ends of r and orders them.
func (c *Content) SaturateRange(r Range) Range {
	return RangeBetween(c.SaturatePosition(r.From), c.SaturatePosition(r.To))
}

// Write Operations

// InsertText inserts text at pos and returns the range it now occupies.
// Line breaks in text are normalized to \n. To advances one line per line
// break and its column is a byte offset into the last inserted line.
func (c *Content) InsertText(pos Position, text string) Range {
	pos = c.SaturatePosition(pos)
	text = normalizeLineEndings(text)

	line := c.lines[pos.Line]
	before, after := line[:pos.Column], line[pos.Column:]

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		c.lines[pos.Line] = before + text + after
		return Range{
			From: pos,
			To:   Position{Line: pos.Line, Column: pos.Column + len(text)},
		}
	}

	last := len(parts) - 1
	inserted := make([]string, 0, len(parts))
	inserted = append(inserted, before+parts[0])
	inserted = append(inserted, parts[1:last]...)
	inserted = append(inserted, parts[last]+after)
	c.lines = slices.Replace(c.lines, pos.Line, pos.Line+1, inserted...)

	return Range{
		From: pos,
		To:   Position{Line: pos.Line + last, Column: len(parts[last])},
	}
}

// DeleteRange removes the text in r and returns the range that was removed.
// The range is saturated to the current content first.
func (c *Content) DeleteRange(r Range) Range {
	r = c.SaturateRange(r)
	if r.IsEmpty() {
		return r
	}

	head := c.lines[r.From.Line][:r.From.Column]
	tail := c.lines[r.To.Line][r.To.Column:]
	c.lines = slices.Replace(c.lines, r.From.Line, r.To.Line+1, head+tail)

	return r
}

// Clone returns an independent copy of the content.
func (c *Content) Clone() *Content {
	return &Content{
		lines:      slices.Clone(c.lines),
		lineEnding: c.lineEnding,
		detect:     c.detect,
	}
}
