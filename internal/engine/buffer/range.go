package buffer

import "fmt"

// Range represents a span of text using line/column positions.
// From is inclusive, To is exclusive. Stored ranges keep From <= To;
// use RangeBetween when the order of the endpoints is not known.
type Range struct {
	From Position // Inclusive start position
	To   Position // Exclusive end position
}

// NewRange creates a new Range from two positions without reordering them.
func NewRange(from, to Position) Range {
	return Range{From: from, To: to}
}

// RangeBetween creates a Range spanning a and b in document order.
func RangeBetween(a, b Position) Range {
	if b.Before(a) {
		return Range{From: b, To: a}
	}
	return Range{From: a, To: b}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.From.String(), r.To.String())
}

// IsEmpty returns true if From equals To.
func (r Range) IsEmpty() bool {
	return r.From == r.To
}

// IsValid returns true if From <= To.
func (r Range) IsValid() bool {
	return r.From.Compare(r.To) <= 0
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.From) >= 0 && p.Compare(r.To) < 0
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.From.Line == r.To.Line
}

// Overlaps returns true if the two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.From.Before(other.To) && other.From.Before(r.To)
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		From: MinPosition(r.From, other.From),
		To:   MaxPosition(r.To, other.To),
	}
}
