package usecase

import (
	"context"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
)

// CreateRecordInput carries the data of a new record. An empty ID is generated.
type CreateRecordInput struct {
	ID    string
	Title string
	Body  string
}

// UpdateRecordInput carries the new content of an existing record
type UpdateRecordInput struct {
	ID    string
	Title string
	Body  string
}

// RecordUseCase defines the record service operations.
// Write operations accept an optional unit of work: with nil they commit on
// their own, otherwise they join the caller's unit of work.
type RecordUseCase interface {
	// Create persists a new record, indexes it and schedules its notification task
	Create(ctx context.Context, in CreateRecordInput, u *uow.UnitOfWork) (*entity.Record, error)

	// Update changes the content of a record and bumps its revision
	Update(ctx context.Context, in UpdateRecordInput, u *uow.UnitOfWork) (*entity.Record, error)

	// Delete removes a record and its index entry
	Delete(ctx context.Context, id string, u *uow.UnitOfWork) error

	// CreateMany creates all records in one unit of work with a single commit
	CreateMany(ctx context.Context, in []CreateRecordInput) ([]*entity.Record, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*entity.Record, error)

	// Versions lists the audit history of a record
	Versions(ctx context.Context, id string) ([]*entity.RecordVersion, error)
}
