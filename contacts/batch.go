package contacts

import (
	"github.com/google/uuid"

	"github.com/jamuseum/go-gdata"
)

// MarkBatch tags the entry with a batch operation (gdata.BatchInsert,
// gdata.BatchUpdate, gdata.BatchDelete or gdata.BatchQuery). An empty id
// generates a fresh one. The id used is returned so that callers can match
// the entry against the result feed.
func (e *ContactEntry) MarkBatch(op, id string) string {
	e.BatchID, e.BatchOperation = batchTags(op, &id)
	return id
}

// MarkBatch tags the entry with a batch operation. See
// ContactEntry.MarkBatch.
func (e *GroupEntry) MarkBatch(op, id string) string {
	e.BatchID, e.BatchOperation = batchTags(op, &id)
	return id
}

// MarkBatch tags the entry with a batch operation. See
// ContactEntry.MarkBatch.
func (e *ProfileEntry) MarkBatch(op, id string) string {
	e.BatchID, e.BatchOperation = batchTags(op, &id)
	return id
}

func batchTags(op string, id *string) (*gdata.BatchID, *gdata.BatchOperation) {
	if *id == "" {
		*id = uuid.NewString()
	}
	return &gdata.BatchID{Value: *id}, &gdata.BatchOperation{Type: op}
}
