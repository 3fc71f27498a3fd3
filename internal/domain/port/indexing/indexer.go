package indexing

import (
	"context"
)

// Document is a searchable projection of a committed entity
type Document struct {
	Index string
	ID    string
	Body  map[string]any
}

// Indexer keeps a search index in sync with committed data
type Indexer interface {
	// Index stores or replaces the document
	Index(ctx context.Context, doc Document) error

	// Delete removes the document from the index
	Delete(ctx context.Context, index, id string) error
}
