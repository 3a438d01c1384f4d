package view

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
)

var textAlphabet = []rune{'a', 'b', ' ', '.', '\n', 'ç'}

func textGen(maxLen int) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return string(rapid.SliceOfN(rapid.SampledFrom(textAlphabet), 0, maxLen).Draw(t, "runes"))
	})
}

func positionGen() *rapid.Generator[buffer.Position] {
	return rapid.Custom(func(t *rapid.T) buffer.Position {
		return pos(rapid.IntRange(0, 6).Draw(t, "line"), rapid.IntRange(0, 12).Draw(t, "column"))
	})
}

func cursorsGen() *rapid.Generator[[]cursor.Cursor] {
	return rapid.Custom(func(t *rapid.T) []cursor.Cursor {
		n := rapid.IntRange(1, 4).Draw(t, "cursors")
		out := make([]cursor.Cursor, n)
		for i := range out {
			out[i] = cursor.NewSelection(positionGen().Draw(t, "anchor"), positionGen().Draw(t, "position"))
		}
		return out
	})
}

// requireValidCursors checks every cursor of every view is a saturated
// position of the document.
func requireValidCursors(t *rapid.T, ctx *testContext) {
	doc, ok := ctx.docs.Get(ctx.doc)
	require.True(t, ok)
	content := doc.Content()

	for h, v := range ctx.views.ForDocument(ctx.doc) {
		for _, c := range v.Cursors().All() {
			require.Equal(t, c.Anchor, content.SaturatePosition(c.Anchor), "view %d anchor %v", h, c)
			require.Equal(t, c.Position, content.SaturatePosition(c.Position), "view %d position %v", h, c)
		}
	}
}

func TestViews_Property_CursorsStayValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := newTestContext(textGen(30).Draw(t, "text"))
		handles := []Handle{ctx.handle, ctx.addView(), ctx.addView()}
		for _, h := range handles {
			ctx.setCursors(t, h, cursorsGen().Draw(t, "initial")...)
		}

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for range steps {
			h := rapid.SampledFrom(handles).Draw(t, "view")
			v := ctx.view(t, h)

			switch rapid.IntRange(0, 8).Draw(t, "op") {
			case 0:
				ctx.views.InsertTextAtCursorPositions(ctx.docs, h, textGen(6).Draw(t, "insert"))
			case 1:
				ctx.views.InsertTextAtPosition(ctx.docs, h, positionGen().Draw(t, "at"), textGen(6).Draw(t, "insert"), 0)
			case 2:
				ctx.views.DeleteInCursorRanges(ctx.docs, h)
			case 3:
				r := buffer.NewRange(positionGen().Draw(t, "from"), positionGen().Draw(t, "to"))
				ctx.views.DeleteInRange(ctx.docs, h, r, 0)
			case 4:
				ctx.views.Undo(ctx.docs, h)
			case 5:
				ctx.views.Redo(ctx.docs, h)
			case 6:
				v.CommitEdits(ctx.docs)
			case 7:
				m := Movement{
					Motion: Motion(rapid.IntRange(0, int(MotionLastLine)).Draw(t, "motion")),
					Count:  rapid.IntRange(0, 8).Draw(t, "count"),
				}
				v.MoveCursors(ctx.docs, m, MovementKind(rapid.IntRange(0, 1).Draw(t, "kind")))
			case 8:
				ctx.setCursors(t, h, cursorsGen().Draw(t, "cursors")...)
			}

			requireValidCursors(t, ctx)
		}
	})
}

func TestViews_Property_UndoRestoresText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := textGen(30).Draw(t, "text")
		ctx := newTestContext(original)
		sibling := ctx.addView()
		ctx.setCursors(t, ctx.handle, cursorsGen().Draw(t, "cursors")...)

		edits := rapid.IntRange(1, 8).Draw(t, "edits")
		for range edits {
			if rapid.Bool().Draw(t, "insert") {
				ctx.views.InsertTextAtCursorPositions(ctx.docs, ctx.handle, textGen(4).Draw(t, "insert"))
			} else {
				ctx.views.DeleteInCursorRanges(ctx.docs, ctx.handle)
			}
			ctx.view(t, ctx.handle).CommitEdits(ctx.docs)
		}

		for range edits {
			ctx.views.Undo(ctx.docs, sibling)
		}
		require.Equal(t, original, ctx.text(t))
		requireValidCursors(t, ctx)
	})
}

func TestViews_Property_SiblingTracksText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := newTestContext("0123456789")
		sibling := ctx.addView()
		// The sibling sits right before the marker character
		ctx.setCursors(t, sibling, at(0, 5))

		steps := rapid.IntRange(1, 10).Draw(t, "steps")
		for range steps {
			p := pos(0, rapid.IntRange(0, 10).Draw(t, "column"))
			if rapid.Bool().Draw(t, "insert") {
				ctx.views.InsertTextAtPosition(ctx.docs, ctx.handle, p, "xy", 0)
				continue
			}

			// Never delete the marker itself
			marker := ctx.positions(t, sibling)[0]
			r := buffer.NewRange(p, marker)
			if marker.Before(p) {
				r = buffer.NewRange(pos(0, marker.Column+1), p)
			}
			ctx.views.DeleteInRange(ctx.docs, ctx.handle, r, 0)
		}

		marker := ctx.positions(t, sibling)[0]
		doc, _ := ctx.docs.Get(ctx.doc)
		require.Equal(t, byte('5'), doc.Content().Line(0)[marker.Column])
	})
}
