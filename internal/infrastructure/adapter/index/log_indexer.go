package index

import (
	"context"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
)

// LogIndexer only logs index changes. It stands in for a search backend when none is configured.
type LogIndexer struct {
	logger coreport.Logger
}

var _ indexing.Indexer = (*LogIndexer)(nil)

// NewLogIndexer creates an indexer writing to logger
func NewLogIndexer(logger coreport.Logger) *LogIndexer {
	return &LogIndexer{logger: logger}
}

// Index logs the document
func (i *LogIndexer) Index(_ context.Context, doc indexing.Document) error {
	i.logger.Info("Document indexed", map[string]any{
		"index": doc.Index,
		"id":    doc.ID,
	})
	return nil
}

// Delete logs the removal
func (i *LogIndexer) Delete(_ context.Context, index, id string) error {
	i.logger.Info("Document removed from index", map[string]any{
		"index": index,
		"id":    id,
	})
	return nil
}

// Ping always succeeds
func (i *LogIndexer) Ping(context.Context) error {
	return nil
}
