package rendercache

import "context"

// DocID identifies a document. The zero value means "no identity"; content
// without an identity anchor is never cacheable.
type DocID int64

// Status is a document lifecycle state. Only StatusPublished is cacheable;
// the remaining values exist so hosts and tests can express transitions.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPrivate   Status = "private"
	StatusTrash     Status = "trash"
)

// Document is the engine's view of a document record. It is referenced, not
// owned: the host's store remains authoritative.
type Document struct {
	ID       DocID
	Status   Status
	Password string
}

// Protected reports whether the document requires a password.
func (d Document) Protected() bool { return d.Password != "" }

// DocumentSource resolves documents by id.
// Lookup returns (doc, true, nil) when the document exists and
// (Document{}, false, nil) when it does not. Errors are treated by the engine
// as "not eligible", never as a fault.
type DocumentSource interface {
	Lookup(ctx context.Context, id DocID) (Document, bool, error)
}
