package view

import (
	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/cursor"
	"github.com/dshills/splitview/internal/engine/document"
)

// tb is the subset of testing.TB that *rapid.T also provides.
type tb interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

type testContext struct {
	docs   *document.Collection
	views  *Collection
	doc    document.Handle
	handle Handle
}

func newTestContext(text string) *testContext {
	docs := document.NewCollection()
	views := NewCollection()
	docs.OnRemove(func(h document.Handle) { views.RemoveDocumentViews(h) })

	doc := docs.Add(document.New("", buffer.NewContentFromString(text)))
	return &testContext{
		docs:   docs,
		views:  views,
		doc:    doc,
		handle: views.Add(New(LocalTarget, doc)),
	}
}

func (ctx *testContext) addView() Handle {
	return ctx.views.Add(New(NewTarget(), ctx.doc))
}

func (ctx *testContext) view(t tb, h Handle) *View {
	t.Helper()
	v, ok := ctx.views.Get(h)
	if !ok {
		t.Fatalf("view %d not found", h)
	}
	return v
}

func (ctx *testContext) setCursors(t tb, h Handle, cursors ...cursor.Cursor) {
	t.Helper()
	ctx.view(t, h).SetCursors(ctx.docs, cursors)
}

func (ctx *testContext) text(t tb) string {
	t.Helper()
	doc, ok := ctx.docs.Get(ctx.doc)
	if !ok {
		t.Fatal("document not found")
	}
	return doc.Text()
}

func (ctx *testContext) positions(t tb, h Handle) []buffer.Position {
	t.Helper()
	var out []buffer.Position
	for _, c := range ctx.view(t, h).Cursors().All() {
		out = append(out, c.Position)
	}
	return out
}

func pos(line, col int) buffer.Position {
	return buffer.NewPosition(line, col)
}

func at(line, col int) cursor.Cursor {
	return cursor.NewCursor(pos(line, col))
}
