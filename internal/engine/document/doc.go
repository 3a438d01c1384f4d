// Package document ties buffer text to its edit history and owns the set of
// open documents.
//
// A Document is the only writer of its buffer.Content: every insertion and
// deletion goes through it so the edit is recorded in the document's
// history.History. Collection hands out small integer handles; a handle slot
// is reused only after its document was removed. Observers registered with
// OnRemove are notified after a document leaves the collection, which is how
// views onto a closed document are dropped.
package document
