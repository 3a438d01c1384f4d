package document

import (
	"testing"

	"github.com/dshills/splitview/internal/engine/buffer"
)

func TestNewDocument(t *testing.T) {
	doc := New("/tmp/test.go", buffer.NewContentFromString("package main"))

	if doc.Path != "/tmp/test.go" {
		t.Errorf("Path = %q, want %q", doc.Path, "/tmp/test.go")
	}
	if doc.Name != "test.go" {
		t.Errorf("Name = %q, want %q", doc.Name, "test.go")
	}
	if doc.Text() != "package main" {
		t.Errorf("Text() = %q, want %q", doc.Text(), "package main")
	}
	if doc.IsModified() {
		t.Error("new document should not be modified")
	}
	if doc.IsScratch() {
		t.Error("document with a path should not be scratch")
	}
}

func TestNewScratchDocument(t *testing.T) {
	doc := New("", nil)

	if doc.Name != "Untitled" {
		t.Errorf("Name = %q, want %q", doc.Name, "Untitled")
	}
	if !doc.IsScratch() {
		t.Error("document without a path should be scratch")
	}
	if doc.Content().LineCount() != 1 {
		t.Error("scratch document should have one empty line")
	}
}

func TestDocumentWithMaxHistory(t *testing.T) {
	doc := New("", nil, WithMaxHistory(2))

	if doc.History().MaxEntries() != 2 {
		t.Errorf("MaxEntries() = %d, want 2", doc.History().MaxEntries())
	}
}

func TestDocumentInsertRecordsEdit(t *testing.T) {
	doc := New("", buffer.NewContentFromString("ab"))

	r := doc.InsertText(buffer.NewPosition(0, 1), "X\r\nY", 3)

	if doc.Text() != "aX\nYb" {
		t.Errorf("Text() = %q", doc.Text())
	}
	if r.To != buffer.NewPosition(1, 1) {
		t.Errorf("unexpected range %v", r)
	}
	if !doc.IsModified() || doc.Version() != 1 {
		t.Error("insert should mark the document modified")
	}
	if !doc.History().HasPending() {
		t.Fatal("insert should be recorded")
	}

	edits := doc.Undo()
	if len(edits) != 1 || edits[0].CursorIndex != 3 || edits[0].Text != "X\nY" {
		t.Errorf("unexpected undo edits %v", edits)
	}
	if doc.Text() != "ab" {
		t.Errorf("undo should restore text, got %q", doc.Text())
	}
}

func TestDocumentEmptyEditsNotRecorded(t *testing.T) {
	doc := New("", buffer.NewContentFromString("ab"))

	doc.InsertText(buffer.NewPosition(0, 1), "", 0)
	doc.DeleteRange(buffer.NewRange(buffer.NewPosition(0, 1), buffer.NewPosition(0, 1)), 0)

	if doc.History().HasPending() || doc.IsModified() {
		t.Error("empty edits should not be recorded")
	}
}

func TestDocumentDeleteRecordsRemovedText(t *testing.T) {
	doc := New("", buffer.NewContentFromString("hello\nworld"))

	removed := doc.DeleteRange(buffer.NewRange(buffer.NewPosition(1, 9), buffer.NewPosition(0, 3)), 0)

	if removed.From != buffer.NewPosition(0, 3) || removed.To != buffer.NewPosition(1, 5) {
		t.Errorf("unexpected removed range %v", removed)
	}
	if doc.Text() != "hel" {
		t.Errorf("Text() = %q", doc.Text())
	}

	doc.Undo()
	if doc.Text() != "hello\nworld" {
		t.Errorf("undo should restore text, got %q", doc.Text())
	}

	doc.Redo()
	if doc.Text() != "hel" {
		t.Errorf("redo should delete again, got %q", doc.Text())
	}
}

func TestDocumentUndoMultiCursorGroup(t *testing.T) {
	doc := New("", buffer.NewContentFromString("ab"))

	// Inserting at every cursor happens last cursor first
	doc.InsertText(buffer.NewPosition(0, 1), "x", 1)
	doc.InsertText(buffer.NewPosition(0, 0), "x", 0)
	doc.CommitEdits()

	if doc.Text() != "xaxb" {
		t.Fatalf("Text() = %q", doc.Text())
	}

	edits := doc.Undo()
	if len(edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(edits))
	}
	if doc.Text() != "ab" {
		t.Errorf("undo should restore text, got %q", doc.Text())
	}

	edits = doc.Redo()
	if len(edits) != 2 || doc.Text() != "xaxb" {
		t.Errorf("redo should reapply both inserts, got %q", doc.Text())
	}
}

func TestDocumentUndoEmpty(t *testing.T) {
	doc := New("", nil)

	if edits := doc.Undo(); len(edits) != 0 {
		t.Errorf("expected no edits, got %v", edits)
	}
	if doc.IsModified() {
		t.Error("empty undo should not modify the document")
	}
}
