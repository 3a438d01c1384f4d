package view

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
)

// Motion identifies how cursors travel.
type Motion uint8

const (
	MotionColumnsForward Motion = iota
	MotionColumnsBackward
	MotionLinesForward
	MotionLinesBackward
	MotionWordsForward
	MotionWordsBackward
	MotionHome
	MotionEnd
	MotionFirstLine
	MotionLastLine
)

var motionNames = map[Motion]string{
	MotionColumnsForward:  "columns-forward",
	MotionColumnsBackward: "columns-backward",
	MotionLinesForward:    "lines-forward",
	MotionLinesBackward:   "lines-backward",
	MotionWordsForward:    "words-forward",
	MotionWordsBackward:   "words-backward",
	MotionHome:            "home",
	MotionEnd:             "end",
	MotionFirstLine:       "first-line",
	MotionLastLine:        "last-line",
}

// String returns the motion's name.
func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMotion parses a motion name as returned by Motion.String.
func ParseMotion(s string) (Motion, error) {
	for m, name := range motionNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown motion %q", s)
}

// Movement is a motion with its repeat count.
// Count is ignored by Home, End, FirstLine and LastLine.
type Movement struct {
	Motion Motion
	Count  int
}

// ColumnsForward moves n characters forward, wrapping to following lines.
func ColumnsForward(n int) Movement { return Movement{Motion: MotionColumnsForward, Count: n} }

// ColumnsBackward moves n characters backward, wrapping to previous lines.
func ColumnsBackward(n int) Movement { return Movement{Motion: MotionColumnsBackward, Count: n} }

// LinesForward moves n lines down.
func LinesForward(n int) Movement { return Movement{Motion: MotionLinesForward, Count: n} }

// LinesBackward moves n lines up.
func LinesBackward(n int) Movement { return Movement{Motion: MotionLinesBackward, Count: n} }

// WordsForward moves to the start of the n-th following word.
func WordsForward(n int) Movement { return Movement{Motion: MotionWordsForward, Count: n} }

// WordsBackward moves to the start of the n-th previous word.
func WordsBackward(n int) Movement { return Movement{Motion: MotionWordsBackward, Count: n} }

// Home moves to the start of the line.
func Home() Movement { return Movement{Motion: MotionHome} }

// End moves to the end of the line.
func End() Movement { return Movement{Motion: MotionEnd} }

// FirstLine moves to the first line, keeping the column where it fits.
func FirstLine() Movement { return Movement{Motion: MotionFirstLine} }

// LastLine moves to the last line, keeping the column where it fits.
func LastLine() Movement { return Movement{Motion: MotionLastLine} }

// String returns a string representation of the movement.
func (m Movement) String() string {
	switch m.Motion {
	case MotionHome, MotionEnd, MotionFirstLine, MotionLastLine:
		return m.Motion.String()
	default:
		return fmt.Sprintf("%s(%d)", m.Motion, m.Count)
	}
}

// MovementKind selects whether the anchor follows the position.
type MovementKind uint8

const (
	// PositionAndAnchor moves the whole cursor, dropping any selection.
	PositionAndAnchor MovementKind = iota
	// PositionOnly moves the position and keeps the anchor, extending the
	// selection.
	PositionOnly
)

// String returns a string representation of the movement kind.
func (k MovementKind) String() string {
	switch k {
	case PositionAndAnchor:
		return "position-and-anchor"
	case PositionOnly:
		return "position-only"
	default:
		return "unknown"
	}
}

// tryNth returns the element at index n of seq. When seq is exhausted first
// it returns how many steps were still missing, which is 0 if seq ended
// right at index n.
func tryNth[E any](seq iter.Seq[E], n int) (E, int, bool) {
	for e := range seq {
		if n == 0 {
			return e, 0, true
		}
		n--
	}
	var zero E
	return zero, n, false
}

// runeStarts yields the byte offset of every rune in s.
func runeStarts(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s {
			if !yield(i) {
				return
			}
		}
	}
}

// runeStartsReverse yields the byte offset of every rune in s, last first.
func runeStartsReverse(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		end := len(s)
		for end > 0 {
			_, size := utf8.DecodeLastRuneInString(s[:end])
			end -= size
			if !yield(end) {
				return
			}
		}
	}
}

// nonWhitespace filters whitespace words out of seq.
func nonWhitespace(seq iter.Seq[buffer.Word]) iter.Seq[buffer.Word] {
	return func(yield func(buffer.Word) bool) {
		for w := range seq {
			if w.Kind == buffer.WordWhitespace {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// MoveCursors moves every cursor of the view in one batch.
// Counts of zero or less leave the cursors where they are.
func (v *View) MoveCursors(docs *document.Collection, m Movement, kind MovementKind) {
	doc, ok := docs.Get(v.document)
	if !ok {
		return
	}
	content := doc.Content()

	g := v.cursors.MutGuard()
	defer g.Release()

	cursors := g.Cursors()
	switch m.Motion {
	case MotionHome, MotionEnd, MotionFirstLine, MotionLastLine:
	default:
		if m.Count <= 0 {
			return
		}
	}

	for i := range cursors {
		c := &cursors[i]
		c.Position = content.SaturatePosition(c.Position)

		switch m.Motion {
		case MotionColumnsForward:
			c.Position = columnsForward(content, c.Position, m.Count)
		case MotionColumnsBackward:
			c.Position = columnsBackward(content, c.Position, m.Count)
		case MotionLinesForward:
			last := content.LineCount() - 1
			if m.Count >= last-c.Position.Line {
				c.Position.Line = last
			} else {
				c.Position.Line += m.Count
			}
			c.Position = content.SaturatePosition(c.Position)
		case MotionLinesBackward:
			c.Position.Line = max(c.Position.Line-m.Count, 0)
			c.Position = content.SaturatePosition(c.Position)
		case MotionWordsForward:
			c.Position = wordsForward(content, c.Position, m.Count)
		case MotionWordsBackward:
			c.Position = wordsBackward(content, c.Position, m.Count)
		case MotionHome:
			c.Position.Column = 0
		case MotionEnd:
			c.Position.Column = content.LineLen(c.Position.Line)
		case MotionFirstLine:
			c.Position.Line = 0
			c.Position = content.SaturatePosition(c.Position)
		case MotionLastLine:
			c.Position.Line = content.LineCount() - 1
			c.Position = content.SaturatePosition(c.Position)
		}
	}

	if kind == PositionAndAnchor {
		for i := range cursors {
			cursors[i].Anchor = cursors[i].Position
		}
	}
}

// SetCursors replaces the view's cursors. The first cursor becomes main.
// Positions are saturated against the document.
func (v *View) SetCursors(docs *document.Collection, cursors []cursor.Cursor) {
	doc, ok := docs.Get(v.document)
	if !ok {
		return
	}
	content := doc.Content()

	v.cursors.Mutate(func(g *cursor.Guard) {
		g.Clear()
		for _, c := range cursors {
			g.Add(cursor.Cursor{
				Anchor:   content.SaturatePosition(c.Anchor),
				Position: content.SaturatePosition(c.Position),
			})
		}
		g.SetMain(0)
	})
}

func columnsForward(content *buffer.Content, p buffer.Position, n int) buffer.Position {
	last := content.LineCount() - 1
	line := content.Line(p.Line)

	offset, rest, ok := tryNth(runeStarts(line[p.Column:]), n)
	switch {
	case ok:
		p.Column += offset
		return p
	case rest == 0:
		p.Column = len(line)
		return p
	}

	// The line break counts as one column
	n = rest - 1
	for {
		if p.Line == last {
			p.Column = content.LineLen(last)
			return p
		}

		p.Line++
		line = content.Line(p.Line)
		offset, rest, ok = tryNth(runeStarts(line), n)
		switch {
		case ok:
			p.Column = offset
			return p
		case rest == 0:
			p.Column = len(line)
			return p
		}
		n = rest - 1
	}
}

func columnsBackward(content *buffer.Content, p buffer.Position, n int) buffer.Position {
	n--
	line := content.Line(p.Line)

	offset, rest, ok := tryNth(runeStartsReverse(line[:p.Column]), n)
	switch {
	case ok:
		p.Column = offset
		return p
	case rest == 0:
		return previousLineEnd(content, p)
	}

	n = rest - 1
	for {
		if p.Line == 0 {
			p.Column = 0
			return p
		}

		p.Line--
		line = content.Line(p.Line)
		offset, rest, ok = tryNth(runeStartsReverse(line), n)
		switch {
		case ok:
			p.Column = offset
			return p
		case rest == 0:
			return previousLineEnd(content, p)
		}
		n = rest - 1
	}
}

// previousLineEnd returns the end of the line above p, or the start of the
// document when p is on the first line.
func previousLineEnd(content *buffer.Content, p buffer.Position) buffer.Position {
	if p.Line == 0 {
		return buffer.Position{}
	}
	p.Line--
	p.Column = content.LineLen(p.Line)
	return p
}

func wordsForward(content *buffer.Content, p buffer.Position, n int) buffer.Position {
	last := content.LineCount() - 1

	for {
		word, _, right := content.WordsFrom(p)
		if word.Kind != buffer.WordWhitespace {
			if n == 0 {
				return word.Position
			}
			n--
		}

		next, rest, ok := tryNth(nonWhitespace(right), n)
		switch {
		case ok:
			return next.Position
		case rest == 0:
			p.Column = content.LineLen(p.Line)
			return p
		case p.Line == last:
			p.Column = content.LineLen(last)
			return p
		}

		n = rest - 1
		p = buffer.Position{Line: p.Line + 1}
	}
}

func wordsBackward(content *buffer.Content, p buffer.Position, n int) buffer.Position {
	n--

	for {
		word, left, _ := content.WordsFrom(p)
		// Being inside a word counts as one step back to its start
		if word.Kind != buffer.WordWhitespace && p.Column != word.Position.Column {
			if n == 0 {
				return word.Position
			}
			n--
		}

		prev, rest, ok := tryNth(nonWhitespace(left), n)
		switch {
		case ok:
			return prev.Position
		case rest == 0:
			if p.Line > 0 {
				return previousLineEnd(content, p)
			}
			return p
		case p.Line == 0:
			return buffer.Position{}
		}

		n = rest - 1
		p = previousLineEnd(content, p)
	}
}
