package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

// insertMapper always inserts, so writing an existing key fails
type insertMapper struct{}

func (insertMapper) ToModel(value any) (any, bool, error) {
	return value, true, nil
}

// failingCommitOp fails its OnCommit hook
type failingCommitOp struct {
	uow.BaseOperation
	err error
}

func (op *failingCommitOp) OnCommit(context.Context, *uow.UnitOfWork) error {
	return op.err
}

func newSessionTestDB(t *testing.T) *TestDBManager {
	t.Helper()

	m := NewTestDBManager(t, logger.NewNopLogger())
	m.Connect(t)
	m.SetupTestDB(t)
	return m
}

func testRecord(id string) *model.Record {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.Record{ID: id, Title: "title " + id, Revision: 1, CreatedAt: now, UpdatedAt: now}
}

func testMarker(id string) *model.CleanupMarker {
	return &model.CleanupMarker{
		ID:        id,
		RecordID:  "r1",
		Reason:    "boom",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestGormSession_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("Staged models are written on commit", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.BeginNested(ctx))
		assert.True(t, s.InTransaction())
		assert.Equal(t, 1, s.Depth())

		s.Add(testRecord("r1"))
		s.Add(testRecord("r2"))
		require.NoError(t, s.Commit(ctx))

		assert.False(t, s.InTransaction())
		assert.Equal(t, 0, s.Depth())
		assert.Equal(t, int64(2), db.Count(t, &model.Record{}))
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("r1"))
		require.NoError(t, s.Commit(ctx))

		require.NoError(t, s.BeginNested(ctx))
		s.Delete(testRecord("r1"))
		require.NoError(t, s.Commit(ctx))

		assert.Zero(t, db.Count(t, &model.Record{}))
	})

	t.Run("Commit with nothing staged and no transaction is a no-op", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.Commit(ctx))
		assert.False(t, s.InTransaction())
	})

	t.Run("Changes staged outside a transaction start one on commit", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		s.Add(testMarker("m1"))
		require.NoError(t, s.Commit(ctx))

		assert.False(t, s.InTransaction())
		assert.Equal(t, int64(1), db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Duplicate key keeps the driver error and the domain error", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession(WithModelMapper(insertMapper{}))

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("r1"))
		require.NoError(t, s.Commit(ctx))

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("r1"))
		err := s.Commit(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErr.ErrDuplicateRecord)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		assert.True(t, s.InTransaction())

		require.NoError(t, s.Rollback(ctx))
		assert.False(t, s.InTransaction())
		assert.Equal(t, int64(1), db.Count(t, &model.Record{}))
	})
}

func TestGormSession_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("Rolling back the outermost savepoint discards everything", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("r1"))
		require.NoError(t, s.Flush(ctx))
		require.NoError(t, s.Rollback(ctx))

		assert.False(t, s.InTransaction())
		assert.Zero(t, db.Count(t, &model.Record{}))
	})

	t.Run("Inner savepoint rollback keeps the outer work", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("outer"))

		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("inner"))
		require.NoError(t, s.Flush(ctx))
		require.NoError(t, s.Rollback(ctx))

		assert.True(t, s.InTransaction())
		assert.Equal(t, 1, s.Depth())

		require.NoError(t, s.Commit(ctx))

		var ids []string
		require.NoError(t, db.Manager.DB().Model(&model.Record{}).Pluck("id", &ids).Error)
		assert.Equal(t, []string{"outer"}, ids)
	})

	t.Run("Inner savepoint commit waits for the outer commit", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		require.NoError(t, s.BeginNested(ctx))
		require.NoError(t, s.BeginNested(ctx))
		s.Add(testRecord("inner"))
		require.NoError(t, s.Commit(ctx))

		assert.True(t, s.InTransaction())
		assert.Equal(t, 1, s.Depth())

		require.NoError(t, s.Commit(ctx))
		assert.Equal(t, int64(1), db.Count(t, &model.Record{}))
	})
}

func TestGormSession_Flush(t *testing.T) {
	ctx := context.Background()
	db := newSessionTestDB(t)
	s := db.Manager.NewSession()

	require.NoError(t, s.BeginNested(ctx))
	s.Add(testRecord("r1"))

	var count int64
	require.NoError(t, s.DB(ctx).Model(&model.Record{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.DB(ctx).Model(&model.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.Rollback(ctx))
}

func TestGormSession_Close(t *testing.T) {
	ctx := context.Background()
	db := newSessionTestDB(t)
	s := db.Manager.NewSession()

	assert.False(t, s.Close(ctx))

	require.NoError(t, s.BeginNested(ctx))
	s.Add(testRecord("r1"))
	require.NoError(t, s.Flush(ctx))

	assert.True(t, s.Close(ctx))
	assert.False(t, s.InTransaction())
	assert.Equal(t, 0, s.Depth())
	assert.Zero(t, db.Count(t, &model.Record{}))
}

func TestUnitOfWorkOnGormSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Compensating writes survive an error rollback", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()
		cause := errors.New("quota exceeded")

		u, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, u.Register(ctx, uow.NewModelCommitOp(testRecord("r1"))))
		require.NoError(t, u.Register(ctx, uow.NewCleanupOp(func(error) any {
			return testMarker("m1")
		})))

		assert.Same(t, cause, u.Exit(ctx, cause))

		assert.False(t, s.InTransaction())
		assert.Zero(t, db.Count(t, &model.Record{}))
		assert.Equal(t, int64(1), db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Explicitly rolled back work is not visible", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		u, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, u.Register(ctx, uow.NewModelCommitOp(testRecord("r1"))))
		require.NoError(t, u.Register(ctx, uow.NewCleanupOp(func(error) any {
			return testMarker("m1")
		})))
		require.NoError(t, u.Rollback(ctx, nil))

		assert.Zero(t, db.Count(t, &model.Record{}))
		assert.Zero(t, db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Work rolled back by an error in scope is not visible", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		u, err := uow.New(ctx, s)
		require.NoError(t, err)
		err = u.Do(ctx, func(ctx context.Context) error {
			if err := u.Register(ctx, uow.NewModelCommitOp(testRecord("r1"))); err != nil {
				return err
			}
			return errors.New("validation failed")
		})

		assert.EqualError(t, err, "validation failed")
		assert.Zero(t, db.Count(t, &model.Record{}))
	})

	t.Run("Nested units of work share one transaction", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		outer, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, outer.Register(ctx, uow.NewModelCommitOp(testRecord("outer"))))

		committed, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, committed.Register(ctx, uow.NewModelCommitOp(testRecord("kept"))))
		require.NoError(t, committed.Commit(ctx))

		discarded, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, discarded.Register(ctx, uow.NewModelCommitOp(testRecord("dropped"))))
		require.NoError(t, discarded.Rollback(ctx, nil))

		assert.True(t, s.InTransaction())
		require.NoError(t, outer.Commit(ctx))

		var ids []string
		require.NoError(t, db.Manager.DB().Model(&model.Record{}).Order("id").Pluck("id", &ids).Error)
		assert.Equal(t, []string{"kept", "outer"}, ids)
	})

	t.Run("Inner error rollback does not commit the outer unit", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		outer, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, outer.Register(ctx, uow.NewModelCommitOp(testRecord("outer"))))

		inner, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, inner.Register(ctx, uow.NewModelCommitOp(testRecord("inner"))))
		require.NoError(t, inner.Register(ctx, uow.NewCleanupOp(func(error) any {
			return testMarker("m1")
		})))
		cause := errors.New("quota exceeded")
		assert.Same(t, cause, inner.Exit(ctx, cause))

		assert.True(t, s.InTransaction())
		assert.Equal(t, 1, s.Depth())
		require.NoError(t, outer.Rollback(ctx, nil))

		assert.False(t, s.InTransaction())
		assert.Zero(t, db.Count(t, &model.Record{}))
		assert.Zero(t, db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Outer commit keeps compensating writes of a failed inner unit", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()

		outer, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, outer.Register(ctx, uow.NewModelCommitOp(testRecord("outer"))))

		inner, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, inner.Register(ctx, uow.NewModelCommitOp(testRecord("inner"))))
		require.NoError(t, inner.Register(ctx, uow.NewCleanupOp(func(error) any {
			return testMarker("m1")
		})))
		require.Error(t, inner.Exit(ctx, errors.New("quota exceeded")))

		require.NoError(t, outer.Commit(ctx))

		var ids []string
		require.NoError(t, db.Manager.DB().Model(&model.Record{}).Pluck("id", &ids).Error)
		assert.Equal(t, []string{"outer"}, ids)
		assert.Equal(t, int64(1), db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Failing commit hook rolls back in scope and records compensation", func(t *testing.T) {
		db := newSessionTestDB(t)
		s := db.Manager.NewSession()
		hookErr := errors.New("index unavailable")

		u, err := uow.New(ctx, s)
		require.NoError(t, err)
		err = u.Do(ctx, func(ctx context.Context) error {
			if err := u.Register(ctx, uow.NewModelCommitOp(testRecord("r1"))); err != nil {
				return err
			}
			if err := u.Register(ctx, &failingCommitOp{err: hookErr}); err != nil {
				return err
			}
			if err := u.Register(ctx, uow.NewCleanupOp(func(error) any {
				return testMarker("m1")
			})); err != nil {
				return err
			}
			return u.Commit(ctx)
		})

		assert.ErrorIs(t, err, hookErr)
		assert.True(t, u.Resolved())
		assert.False(t, s.InTransaction())
		assert.Equal(t, int64(1), db.Count(t, &model.Record{}))
		assert.Equal(t, int64(1), db.Count(t, &model.CleanupMarker{}))
	})

	t.Run("Failed commit leaves the unit open and the exit guard cleans up", func(t *testing.T) {
		db := newSessionTestDB(t)
		seed := db.Manager.NewSession()
		require.NoError(t, seed.BeginNested(ctx))
		seed.Add(testRecord("r1"))
		require.NoError(t, seed.Commit(ctx))

		s := db.Manager.NewSession(WithModelMapper(insertMapper{}))
		u, err := uow.New(ctx, s)
		require.NoError(t, err)
		require.NoError(t, u.Register(ctx, uow.NewModelCommitOp(testRecord("r1"))))

		commitErr := u.Commit(ctx)
		require.ErrorIs(t, commitErr, domainErr.ErrDuplicateRecord)
		assert.False(t, u.Resolved())

		assert.ErrorIs(t, u.Exit(ctx, commitErr), domainErr.ErrDuplicateRecord)
		assert.True(t, u.Resolved())
		assert.False(t, s.InTransaction())
	})
}
