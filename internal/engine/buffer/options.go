package buffer

// LineEnding specifies the line ending style used when the content is
// joined back into a single string.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding parses a configuration name into a LineEnding.
// The second result is false for "auto" and unknown names.
func ParseLineEnding(s string) (LineEnding, bool) {
	switch s {
	case "lf", "LF", "unix":
		return LineEndingLF, true
	case "crlf", "CRLF", "windows":
		return LineEndingCRLF, true
	case "cr", "CR", "mac":
		return LineEndingCR, true
	default:
		return LineEndingLF, false
	}
}

// Option is a functional option for configuring a Content.
type Option func(*Content)

// WithLineEnding sets the content's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(c *Content) {
		c.lineEnding = le
		c.detect = false
	}
}

// WithLF configures the content to use Unix line endings (\n).
func WithLF() Option {
	return WithLineEnding(LineEndingLF)
}

// WithCRLF configures the content to use Windows line endings (\r\n).
func WithCRLF() Option {
	return WithLineEnding(LineEndingCRLF)
}

// WithCR configures the content to use old Mac line endings (\r).
func WithCR() Option {
	return WithLineEnding(LineEndingCR)
}

// WithDetectedLineEnding picks the line ending from the initial text.
// This is the default.
func WithDetectedLineEnding() Option {
	return func(c *Content) {
		c.detect = true
	}
}

// DetectLineEnding returns a LineEnding based on the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	i := 0
	for i < len(text) {
		if i+1 < len(text) && text[i] == '\r' && text[i+1] == '\n' {
			crlfCount++
			i += 2
		} else if text[i] == '\r' {
			crCount++
			i++
		} else if text[i] == '\n' {
			lfCount++
			i++
		} else {
			i++
		}
	}

	if crlfCount > 0 && crlfCount >= lfCount && crlfCount >= crCount {
		return LineEndingCRLF
	}
	if crCount > 0 && crCount >= lfCount && crCount >= crlfCount {
		return LineEndingCR
	}

	return LineEndingLF
}
