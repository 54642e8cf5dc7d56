package repository

import (
	"context"
)

// SeedRepository is the small write surface the fixture seeders need.
// collectionPath may be a nested path ("messageThreads/thread_x/messages").
type SeedRepository interface {
	// Upsert creates or merges the document, stamping a server-side
	// updatedAt. Fields already present in data win over the stamp.
	Upsert(ctx context.Context, collectionPath, id string, data map[string]interface{}) error

	// Merge creates or merges the document without touching fields that
	// are absent from data.
	Merge(ctx context.Context, collectionPath, id string, data map[string]interface{}) error

	// Replace writes the document in full, dropping any existing fields.
	Replace(ctx context.Context, collectionPath, id string, data interface{}) error
}
