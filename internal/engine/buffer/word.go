package buffer

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// WordKind classifies a contiguous run of characters.
type WordKind uint8

const (
	WordIdentifier WordKind = iota // letters, digits and '_'
	WordWhitespace                 // unicode white space
	WordSymbol                     // everything else
)

// String returns a string representation of the word kind.
func (k WordKind) String() string {
	switch k {
	case WordIdentifier:
		return "identifier"
	case WordWhitespace:
		return "whitespace"
	case WordSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Word is a run of characters of the same kind on one line.
type Word struct {
	Kind     WordKind
	Position Position
	Text     string
}

// End returns the position just after the word.
func (w Word) End() Position {
	return Position{Line: w.Position.Line, Column: w.Position.Column + len(w.Text)}
}

// Range returns the range the word occupies.
func (w Word) Range() Range {
	return Range{From: w.Position, To: w.End()}
}

func kindOf(r rune) WordKind {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return WordIdentifier
	case unicode.IsSpace(r):
		return WordWhitespace
	default:
		return WordSymbol
	}
}

// wordForward scans the word starting at byte start of text.
func wordForward(text string, start int) (WordKind, int) {
	r, size := utf8.DecodeRuneInString(text[start:])
	kind := kindOf(r)
	end := start + size
	for end < len(text) {
		r, size = utf8.DecodeRuneInString(text[end:])
		if kindOf(r) != kind {
			break
		}
		end += size
	}
	return kind, end
}

// wordBackward scans the word ending at byte end of text.
func wordBackward(text string, end int) (WordKind, int) {
	r, size := utf8.DecodeLastRuneInString(text[:end])
	kind := kindOf(r)
	start := end - size
	for start > 0 {
		r, size = utf8.DecodeLastRuneInString(text[:start])
		if kindOf(r) != kind {
			break
		}
		start -= size
	}
	return kind, start
}

// WordAt returns the word under pos.
// At the end of a line the last word of the line is returned; an empty line
// yields a zero-length whitespace word.
func (c *Content) WordAt(pos Position) Word {
	pos = c.SaturatePosition(pos)
	line := c.lines[pos.Line]
	if len(line) == 0 {
		return Word{Kind: WordWhitespace, Position: Position{Line: pos.Line}}
	}

	if pos.Column == len(line) {
		kind, start := wordBackward(line, len(line))
		return Word{
			Kind:     kind,
			Position: Position{Line: pos.Line, Column: start},
			Text:     line[start:],
		}
	}

	// Walk back to the start of the run containing pos, then scan forward
	r, _ := utf8.DecodeRuneInString(line[pos.Column:])
	kind := kindOf(r)
	start := pos.Column
	for start > 0 {
		prev, size := utf8.DecodeLastRuneInString(line[:start])
		if kindOf(prev) != kind {
			break
		}
		start -= size
	}
	_, end := wordForward(line, start)

	return Word{
		Kind:     kind,
		Position: Position{Line: pos.Line, Column: start},
		Text:     line[start:end],
	}
}

// WordsFrom returns the word under pos together with the words to its left
// (nearest first) and to its right on the same line.
// The sequences are lazy and can be ranged over more than once.
func (c *Content) WordsFrom(pos Position) (Word, iter.Seq[Word], iter.Seq[Word]) {
	word := c.WordAt(pos)
	lineIndex := word.Position.Line
	line := c.lines[lineIndex]

	left := func(yield func(Word) bool) {
		end := word.Position.Column
		for end > 0 {
			kind, start := wordBackward(line, end)
			w := Word{
				Kind:     kind,
				Position: Position{Line: lineIndex, Column: start},
				Text:     line[start:end],
			}
			if !yield(w) {
				return
			}
			end = start
		}
	}

	right := func(yield func(Word) bool) {
		start := word.End().Column
		for start < len(line) {
			kind, end := wordForward(line, start)
			w := Word{
				Kind:     kind,
				Position: Position{Line: lineIndex, Column: start},
				Text:     line[start:end],
			}
			if !yield(w) {
				return
			}
			start = end
		}
	}

	return word, left, right
}
