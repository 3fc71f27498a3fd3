package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/versioning"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

// sessionConn is implemented by sessions that expose their open transaction
type sessionConn interface {
	DB(ctx context.Context) *gorm.DB
	Flush(ctx context.Context) error
}

// RecordRepository implements RecordRepository interface using GORM
type RecordRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

var _ persistence.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository instance
func NewRecordRepository(db *gorm.DB, logger coreport.Logger) *RecordRepository {
	return &RecordRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// conn reads through the session carried by ctx, flushing its staged changes
// first so they are visible, or through the root connection otherwise
func (r *RecordRepository) conn(ctx context.Context) (*gorm.DB, error) {
	if session, ok := persistence.SessionFromContext(ctx); ok {
		if sc, ok := session.(sessionConn); ok {
			if err := sc.Flush(ctx); err != nil {
				return nil, err
			}
			return sc.DB(ctx), nil
		}
	}
	return r.db.WithContext(ctx), nil
}

// GetByID retrieves a record by its ID
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var recordModel model.Record
	if err := db.Where("id = ?", id).First(&recordModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug("Record not found", map[string]any{
				"record_id": id,
			})
		} else {
			r.logger.Error("Database error when getting record", map[string]any{
				"record_id": id,
				"error":     err.Error(),
			})
		}
		return nil, r.errorMapper.MapRecordNotFoundError(err)
	}

	return RecordFromModel(&recordModel), nil
}

// Exists checks if a record exists
func (r *RecordRepository) Exists(ctx context.Context, id string) (bool, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.Record{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("Database error when checking record existence", map[string]any{
			"record_id": id,
			"error":     err.Error(),
		})
		return false, r.errorMapper.MapError(err, "check record existence")
	}

	return count > 0, nil
}

// ListVersions returns the audit history of a record, oldest first
func (r *RecordRepository) ListVersions(ctx context.Context, id string) ([]*entity.RecordVersion, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := versioning.Versions(ctx, db, model.Record{}.TableName(), id)
	if err != nil {
		return nil, r.errorMapper.MapError(err, "list record versions")
	}

	versions := make([]*entity.RecordVersion, 0, len(entries))
	for _, e := range entries {
		snapshot := map[string]any{}
		if err := json.Unmarshal([]byte(e.Snapshot), &snapshot); err != nil {
			return nil, fmt.Errorf("%w: corrupt snapshot for record %s version %d: %s",
				errs.ErrInternalServer, id, e.Version, err.Error())
		}

		v := &entity.RecordVersion{
			RecordID:   e.RecordKey,
			Version:    e.Version,
			Operation:  entity.VersionOperation(e.Operation),
			Snapshot:   snapshot,
			RemoteAddr: e.RemoteAddr,
			IssuedAt:   e.CreatedAt,
		}
		if e.TransactionID != nil {
			v.TransactionID = *e.TransactionID
		}
		if e.IssuedAt != nil {
			v.IssuedAt = *e.IssuedAt
		}
		versions = append(versions, v)
	}

	return versions, nil
}

// CountCleanupMarkers returns how many cleanup markers were recorded for a record
func (r *RecordRepository) CountCleanupMarkers(ctx context.Context, recordID string) (int64, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&model.CleanupMarker{}).Where("record_id = ?", recordID).Count(&count).Error; err != nil {
		return 0, r.errorMapper.MapError(err, "count cleanup markers")
	}
	return count, nil
}
