package persistence

import (
	"context"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
)

// RecordRepository defines the read side of record persistence.
// Writes go through a unit of work.
type RecordRepository interface {
	// GetByID retrieves a record by its ID
	GetByID(ctx context.Context, id string) (*entity.Record, error)

	// Exists checks if a record exists
	Exists(ctx context.Context, id string) (bool, error)

	// ListVersions returns the audit history of a record, oldest first
	ListVersions(ctx context.Context, id string) ([]*entity.RecordVersion, error)

	// CountCleanupMarkers returns how many cleanup markers were recorded for a record
	CountCleanupMarkers(ctx context.Context, recordID string) (int64, error)
}
