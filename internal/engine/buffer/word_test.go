package buffer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(seq func(func(Word) bool)) []Word {
	var words []Word
	for w := range seq {
		words = append(words, w)
	}
	return words
}

func texts(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestWordAt_Classification(t *testing.T) {
	c := NewContentFromString("foo_1  +=bar")

	w := c.WordAt(NewPosition(0, 2))
	require.Equal(t, WordIdentifier, w.Kind)
	require.Equal(t, "foo_1", w.Text)
	require.Equal(t, NewPosition(0, 0), w.Position)

	w = c.WordAt(NewPosition(0, 6))
	require.Equal(t, WordWhitespace, w.Kind)
	require.Equal(t, "  ", w.Text)
	require.Equal(t, NewPosition(0, 5), w.Position)

	w = c.WordAt(NewPosition(0, 7))
	require.Equal(t, WordSymbol, w.Kind)
	require.Equal(t, "+=", w.Text)
}

func TestWordAt_EndOfLineReturnsLastWord(t *testing.T) {
	c := NewContentFromString("c e")

	w := c.WordAt(NewPosition(0, 3))
	require.Equal(t, "e", w.Text)
	require.Equal(t, NewPosition(0, 2), w.Position)
	require.Equal(t, NewPosition(0, 3), w.End())
}

func TestWordAt_EmptyLine(t *testing.T) {
	c := NewContentFromString("a\n\nb")

	w := c.WordAt(NewPosition(1, 0))
	require.Equal(t, WordWhitespace, w.Kind)
	require.Empty(t, w.Text)
	require.Equal(t, NewPosition(1, 0), w.Position)
}

func TestWordAt_MultibyteIdentifier(t *testing.T) {
	c := NewContentFromString("açaí!")

	w := c.WordAt(NewPosition(0, 3))
	require.Equal(t, WordIdentifier, w.Kind)
	require.Equal(t, "açaí", w.Text)
	require.Equal(t, 6, w.End().Column)
}

func TestWordsFrom_LeftAndRight(t *testing.T) {
	c := NewContentFromString("one two.three")

	word, left, right := c.WordsFrom(NewPosition(0, 5))
	require.Equal(t, "two", word.Text)
	require.Equal(t, []string{" ", "one"}, texts(collect(left)))
	require.Equal(t, []string{".", "three"}, texts(collect(right)))
}

func TestWordsFrom_Restartable(t *testing.T) {
	c := NewContentFromString("a b c")

	_, _, right := c.WordsFrom(NewPosition(0, 0))
	first := collect(right)
	second := collect(right)
	require.Equal(t, first, second)
	require.Len(t, first, 4)
}

func TestWordsFrom_EarlyStop(t *testing.T) {
	c := NewContentFromString("a b c d")

	_, _, right := c.WordsFrom(NewPosition(0, 0))
	idx := slices.IndexFunc(collect(right), func(w Word) bool { return w.Text == "c" })
	require.Equal(t, 3, idx)

	var got []Word
	for w := range right {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	require.Len(t, got, 2)
}
