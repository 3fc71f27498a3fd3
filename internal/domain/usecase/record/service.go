package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/tasks"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
)

const (
	// IndexName is the search index records are projected into
	IndexName = "records"
	// TaskQueue is the queue record notifications are dispatched on
	TaskQueue = "records"

	TaskRecordCreated = "record.created"
	TaskRecordUpdated = "record.updated"
	TaskRecordDeleted = "record.deleted"
)

// Service implements the record use cases on top of units of work
type Service struct {
	repo         persistence.RecordRepository
	indexer      indexing.Indexer
	dispatcher   tasks.Dispatcher
	factory      *uow.Factory
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	newID        func() string

	create func(ctx context.Context, in usecase.CreateRecordInput, u *uow.UnitOfWork) (*entity.Record, error)
	update func(ctx context.Context, in usecase.UpdateRecordInput, u *uow.UnitOfWork) (*entity.Record, error)
	remove func(ctx context.Context, id string, u *uow.UnitOfWork) (struct{}, error)
}

var _ usecase.RecordUseCase = (*Service)(nil)

// NewService creates a new record service
func NewService(
	repo persistence.RecordRepository,
	indexer indexing.Indexer,
	dispatcher tasks.Dispatcher,
	factory *uow.Factory,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	s := &Service{
		repo:         repo,
		indexer:      indexer,
		dispatcher:   dispatcher,
		factory:      factory,
		timeProvider: timeProvider,
		logger:       logger,
		newID:        uuid.NewString,
	}
	s.create = uow.Wrap(factory, s.createRecord)
	s.update = uow.Wrap(factory, s.updateRecord)
	s.remove = uow.Wrap(factory, s.deleteRecord)
	return s
}

// Create persists a new record
func (s *Service) Create(ctx context.Context, in usecase.CreateRecordInput, u *uow.UnitOfWork) (*entity.Record, error) {
	return s.create(ctx, in, u)
}

// Update changes the content of an existing record
func (s *Service) Update(ctx context.Context, in usecase.UpdateRecordInput, u *uow.UnitOfWork) (*entity.Record, error) {
	return s.update(ctx, in, u)
}

// Delete removes a record
func (s *Service) Delete(ctx context.Context, id string, u *uow.UnitOfWork) error {
	_, err := s.remove(ctx, id, u)
	return err
}

// CreateMany creates every record in a single unit of work
func (s *Service) CreateMany(ctx context.Context, in []usecase.CreateRecordInput) ([]*entity.Record, error) {
	if len(in) == 0 {
		return nil, errs.ErrInvalidRecord
	}

	return uow.Run(ctx, s.factory, nil, func(ctx context.Context, u *uow.UnitOfWork) ([]*entity.Record, error) {
		records := make([]*entity.Record, 0, len(in))
		for _, item := range in {
			record, err := s.Create(ctx, item, u)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		return records, nil
	})
}

// Get retrieves a record by ID
func (s *Service) Get(ctx context.Context, id string) (*entity.Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Versions lists the audit history of a record
func (s *Service) Versions(ctx context.Context, id string) ([]*entity.RecordVersion, error) {
	return s.repo.ListVersions(ctx, id)
}

func (s *Service) createRecord(ctx context.Context, in usecase.CreateRecordInput, u *uow.UnitOfWork) (*entity.Record, error) {
	id := in.ID
	if id == "" {
		id = s.newID()
	}

	record, err := entity.NewRecord(id, in.Title, in.Body, s.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewRecordError(id, "create", errs.ErrDuplicateRecord)
	}

	if err := s.register(ctx, u,
		uow.NewModelCommitOp(record),
		s.cleanupOp(id),
		uow.NewIndexOp(s.indexer, s.document(record)),
		uow.NewTaskOp(s.dispatcher, s.task(TaskRecordCreated, record)),
	); err != nil {
		return nil, err
	}

	s.logger.Debug("Record staged for creation", map[string]any{
		"recordId":   id,
		"unitOfWork": u.ID(),
	})
	return record, nil
}

func (s *Service) updateRecord(ctx context.Context, in usecase.UpdateRecordInput, u *uow.UnitOfWork) (*entity.Record, error) {
	record, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := record.Update(in.Title, in.Body, s.timeProvider); err != nil {
		return nil, err
	}

	if err := s.register(ctx, u,
		uow.NewModelCommitOp(record),
		uow.NewIndexOp(s.indexer, s.document(record)),
		uow.NewTaskOp(s.dispatcher, s.task(TaskRecordUpdated, record)),
	); err != nil {
		return nil, err
	}

	s.logger.Debug("Record staged for update", map[string]any{
		"recordId":   record.ID,
		"revision":   record.Revision,
		"unitOfWork": u.ID(),
	})
	return record, nil
}

func (s *Service) deleteRecord(ctx context.Context, id string, u *uow.UnitOfWork) (struct{}, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return struct{}{}, err
	}

	err = s.register(ctx, u,
		uow.NewModelDeleteOp(record),
		uow.NewIndexDeleteOp(s.indexer, IndexName, record.ID),
		uow.NewTaskOp(s.dispatcher, s.task(TaskRecordDeleted, record)),
	)
	return struct{}{}, err
}

func (s *Service) register(ctx context.Context, u *uow.UnitOfWork, ops ...uow.Operation) error {
	for _, op := range ops {
		if err := u.Register(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

// cleanupOp records a marker for the record when its unit of work fails
func (s *Service) cleanupOp(recordID string) *uow.CleanupOp {
	return uow.NewCleanupOp(func(cause error) any {
		s.logger.Warn("Recording cleanup marker", map[string]any{
			"recordId": recordID,
			"cause":    cause.Error(),
		})
		return entity.NewCleanupMarker(s.newID(), recordID, cause, s.timeProvider)
	})
}

func (s *Service) document(record *entity.Record) indexing.Document {
	return indexing.Document{
		Index: IndexName,
		ID:    record.ID,
		Body:  record.Document(),
	}
}

func (s *Service) task(name string, record *entity.Record) tasks.Task {
	return tasks.Task{
		ID:    s.newID(),
		Name:  name,
		Queue: TaskQueue,
		Payload: map[string]any{
			"recordId": record.ID,
			"revision": record.Revision,
		},
		EnqueuedAt: s.timeProvider.Now(),
	}
}
