package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
)

// ModelMapper converts a staged domain value into the gorm model that is written.
// isNew selects an INSERT over an upsert and is ignored for deletes.
type ModelMapper interface {
	ToModel(value any) (model any, isNew bool, err error)
}

// TransactionAuditor opens an audit transaction before staged changes are flushed.
// The returned context is used for the flush statements.
type TransactionAuditor interface {
	BeginTransaction(ctx context.Context, tx *gorm.DB) (context.Context, error)
}

type passthroughMapper struct{}

func (passthroughMapper) ToModel(value any) (any, bool, error) {
	return value, false, nil
}

type change struct {
	value  any
	delete bool
}

// frame holds the changes staged at one nesting level
type frame struct {
	savepoint string
	changes   []change
}

// GormSession is a transactional session on top of gorm.
// frames[0] is the transaction itself; every BeginNested pushes a savepoint frame.
// A GormSession must not be used from more than one goroutine at a time.
type GormSession struct {
	db          *gorm.DB
	tx          *gorm.DB
	frames      []*frame
	seq         int
	mapper      ModelMapper
	auditor     TransactionAuditor
	errorMapper *ErrorMapper
	logger      coreport.Logger
}

// SessionOption configures a GormSession
type SessionOption func(*GormSession)

// WithModelMapper sets the mapper used to turn staged values into models
func WithModelMapper(mapper ModelMapper) SessionOption {
	return func(s *GormSession) {
		if mapper != nil {
			s.mapper = mapper
		}
	}
}

// WithTransactionAuditor enables audit transactions for every flush
func WithTransactionAuditor(auditor TransactionAuditor) SessionOption {
	return func(s *GormSession) {
		s.auditor = auditor
	}
}

// NewGormSession creates a session over db. No transaction is started until
// the first BeginNested or Commit with staged changes.
func NewGormSession(db *gorm.DB, logger coreport.Logger, opts ...SessionOption) *GormSession {
	s := &GormSession{
		db:          db,
		frames:      []*frame{{}},
		mapper:      passthroughMapper{},
		errorMapper: NewErrorMapper(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ persistence.Session = (*GormSession)(nil)

// BeginNested opens a savepoint, starting the outer transaction if needed
func (s *GormSession) BeginNested(ctx context.Context) error {
	if err := s.begin(ctx); err != nil {
		return err
	}

	s.seq++
	name := fmt.Sprintf("sp_%d", s.seq)
	if err := s.tx.WithContext(ctx).Exec("SAVEPOINT " + name).Error; err != nil {
		return s.errorMapper.MapError(err, "create savepoint")
	}
	s.frames = append(s.frames, &frame{savepoint: name})

	s.logger.Debug("Savepoint created", map[string]any{
		"savepoint": name,
		"depth":     s.Depth(),
	})
	return nil
}

// Add stages a model for insert or update in the innermost frame
func (s *GormSession) Add(model any) {
	top := s.top()
	top.changes = append(top.changes, change{value: model})
}

// Delete stages a model for deletion in the innermost frame
func (s *GormSession) Delete(model any) {
	top := s.top()
	top.changes = append(top.changes, change{value: model, delete: true})
}

// Commit flushes the innermost frame and releases its savepoint. Once no
// savepoint is left the transaction is committed.
func (s *GormSession) Commit(ctx context.Context) error {
	top := s.top()

	if top.savepoint != "" {
		if err := s.flush(ctx, top); err != nil {
			return err
		}
		if err := s.tx.WithContext(ctx).Exec("RELEASE SAVEPOINT " + top.savepoint).Error; err != nil {
			return s.errorMapper.MapError(err, "release savepoint")
		}
		s.pop()
		if s.Depth() > 0 {
			return nil
		}
	}

	root := s.frames[0]
	if s.tx == nil {
		if len(root.changes) == 0 {
			return nil
		}
		if err := s.begin(ctx); err != nil {
			return err
		}
	}

	if err := s.flush(ctx, root); err != nil {
		return err
	}

	err := s.tx.Commit().Error
	s.tx = nil
	if err != nil {
		return s.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// Rollback discards the innermost frame and reverts to its savepoint. Rolling
// back the outermost savepoint rolls back the whole transaction.
func (s *GormSession) Rollback(ctx context.Context) error {
	top := s.top()
	top.changes = nil

	if top.savepoint != "" && s.Depth() > 1 {
		db := s.tx.WithContext(ctx)
		if err := db.Exec("ROLLBACK TO SAVEPOINT " + top.savepoint).Error; err != nil {
			return s.errorMapper.MapError(err, "rollback to savepoint")
		}
		if err := db.Exec("RELEASE SAVEPOINT " + top.savepoint).Error; err != nil {
			return s.errorMapper.MapError(err, "release savepoint")
		}
		s.pop()
		return nil
	}

	s.frames = []*frame{{}}
	if s.tx == nil {
		return nil
	}

	err := s.tx.Rollback().Error
	s.tx = nil
	if err != nil {
		return s.errorMapper.MapError(err, "rollback transaction")
	}
	return nil
}

// Flush writes the changes staged in the innermost frame without releasing it.
// It does nothing outside a transaction.
func (s *GormSession) Flush(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	return s.flush(ctx, s.top())
}

// DB returns a handle for queries: the open transaction, or the root connection
func (s *GormSession) DB(ctx context.Context) *gorm.DB {
	if s.tx != nil {
		return s.tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// Depth returns the number of open savepoints
func (s *GormSession) Depth() int {
	return len(s.frames) - 1
}

// InTransaction reports whether a database transaction is open
func (s *GormSession) InTransaction() bool {
	return s.tx != nil
}

// Close discards all staged changes and rolls back an open transaction.
// It reports whether a transaction was left open.
func (s *GormSession) Close(ctx context.Context) bool {
	s.frames = []*frame{{}}
	if s.tx == nil {
		return false
	}

	if err := s.tx.Rollback().Error; err != nil {
		s.logger.Error("Failed to roll back abandoned transaction", map[string]any{
			"error": err.Error(),
		})
	}
	s.tx = nil
	return true
}

func (s *GormSession) begin(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return s.errorMapper.MapError(tx.Error, "begin transaction")
	}
	s.tx = tx
	return nil
}

func (s *GormSession) flush(ctx context.Context, f *frame) error {
	if len(f.changes) == 0 {
		return nil
	}

	if s.auditor != nil {
		auditCtx, err := s.auditor.BeginTransaction(ctx, s.tx.WithContext(ctx))
		if err != nil {
			return s.errorMapper.MapError(err, "begin audit transaction")
		}
		ctx = auditCtx
	}

	db := s.tx.WithContext(ctx)
	for i, c := range f.changes {
		model, isNew, err := s.mapper.ToModel(c.value)
		if err != nil {
			f.changes = f.changes[i:]
			return err
		}

		var result *gorm.DB
		operation := "save"
		switch {
		case c.delete:
			operation = "delete"
			result = db.Delete(model)
		case isNew:
			operation = "create"
			result = db.Create(model)
		default:
			result = db.Save(model)
		}

		if result.Error != nil {
			f.changes = f.changes[i:]
			return s.errorMapper.MapError(result.Error, "flush "+operation)
		}
	}

	f.changes = nil
	return nil
}

func (s *GormSession) top() *frame {
	return s.frames[len(s.frames)-1]
}

func (s *GormSession) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}
