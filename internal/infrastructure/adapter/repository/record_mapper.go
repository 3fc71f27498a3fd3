package repository

import (
	"fmt"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

// RecordMapper converts the values staged by record units of work into gorm models
type RecordMapper struct{}

// NewRecordMapper creates a new RecordMapper
func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// ToModel maps an entity to its model. A record at its first revision is inserted,
// later revisions are saved over the existing row.
func (m *RecordMapper) ToModel(value any) (any, bool, error) {
	switch v := value.(type) {
	case *entity.Record:
		return RecordToModel(v), v.Revision <= 1, nil
	case *entity.CleanupMarker:
		return &model.CleanupMarker{
			ID:        v.ID,
			RecordID:  v.RecordID,
			Reason:    v.Reason,
			CreatedAt: v.CreatedAt,
		}, true, nil
	case *model.Record, *model.CleanupMarker:
		return v, false, nil
	default:
		return nil, false, fmt.Errorf("%w: cannot persist %T", errs.ErrInternalServer, value)
	}
}

// RecordToModel converts a record entity to its database model
func RecordToModel(r *entity.Record) *model.Record {
	return &model.Record{
		ID:        r.ID,
		Title:     r.Title,
		Body:      r.Body,
		Revision:  r.Revision,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// RecordFromModel converts a record model to its entity
func RecordFromModel(m *model.Record) *entity.Record {
	return &entity.Record{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Revision:  m.Revision,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
