// Schemaless document storage with just the two operations the log pipeline
// needs: append a document and count documents matching an equality filter.
package docstore

import "context"

// DocStore is a collection-oriented document sink. Implementations must
// treat a nil or empty filter as matching every document in the collection.
type DocStore interface {
	// InsertOne appends doc to the named collection and returns the
	// storage-assigned document id.
	InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error)

	// CountDocuments reports how many documents in the named collection
	// match every field of filter exactly.
	CountDocuments(ctx context.Context, collection string, filter map[string]any) (int64, error)
}
