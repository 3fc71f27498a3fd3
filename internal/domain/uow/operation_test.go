package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/tasks"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
	indexingmocks "github.com/amirhossein-jamali/dbcoord/mocks/port/indexing"
	tasksmocks "github.com/amirhossein-jamali/dbcoord/mocks/port/tasks"
)

func TestModelOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit operation stages the model on register", func(t *testing.T) {
		model := &widget{Name: "a"}
		session := newOpenSession(t)
		session.EXPECT().Add(model).Return().Once()
		u := newUnitOfWork(t, session)

		require.NoError(t, u.Register(ctx, uow.NewModelCommitOp(model)))
	})

	t.Run("Delete operation marks the model on register", func(t *testing.T) {
		model := &widget{Name: "a"}
		session := newOpenSession(t)
		session.EXPECT().Delete(model).Return().Once()
		u := newUnitOfWork(t, session)

		require.NoError(t, u.Register(ctx, uow.NewModelDeleteOp(model)))
	})

	t.Run("Nil model is rejected", func(t *testing.T) {
		u := newUnitOfWork(t, newOpenSession(t))

		err := u.Register(ctx, uow.NewModelCommitOp(nil))
		assert.ErrorIs(t, err, errs.ErrNilModel)

		err = u.Register(ctx, uow.NewModelDeleteOp(nil))
		assert.ErrorIs(t, err, errs.ErrNilModel)
		assert.Empty(t, u.Operations())
	})

	t.Run("Base operation hooks are no-ops", func(t *testing.T) {
		var op uow.BaseOperation
		u := newUnitOfWork(t, newOpenSession(t))

		assert.NoError(t, op.OnRegister(ctx, u))
		assert.NoError(t, op.OnCommit(ctx, u))
		assert.NoError(t, op.OnPostCommit(ctx, u))
		assert.NoError(t, op.OnException(ctx, u, errors.New("x")))
		assert.NoError(t, op.OnRollback(ctx, u))
		assert.NoError(t, op.OnPostRollback(ctx, u))
	})
}

func TestSideEffectOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("Index and task run only after commit", func(t *testing.T) {
		var journal []string
		doc := indexing.Document{Index: "records", ID: "r1", Body: map[string]any{"title": "t"}}
		task := tasks.Task{ID: "t1", Name: "record.created", Queue: "default"}

		session := newOpenSession(t)
		session.EXPECT().Commit(mock.Anything).RunAndReturn(func(context.Context) error {
			journal = append(journal, "session.commit")
			return nil
		}).Once()

		indexer := indexingmocks.NewMockIndexer(t)
		indexer.EXPECT().Index(mock.Anything, doc).RunAndReturn(func(context.Context, indexing.Document) error {
			journal = append(journal, "index")
			return nil
		}).Once()
		indexer.EXPECT().Delete(mock.Anything, "records", "r0").RunAndReturn(func(context.Context, string, string) error {
			journal = append(journal, "unindex")
			return nil
		}).Once()

		dispatcher := tasksmocks.NewMockDispatcher(t)
		dispatcher.EXPECT().Enqueue(mock.Anything, task).RunAndReturn(func(context.Context, tasks.Task) error {
			journal = append(journal, "enqueue")
			return nil
		}).Once()

		u := newUnitOfWork(t, session)
		registerAll(t, u,
			uow.NewTaskOp(dispatcher, task),
			uow.NewIndexOp(indexer, doc),
			uow.NewIndexDeleteOp(indexer, "records", "r0"))

		require.NoError(t, u.Commit(ctx))
		assert.Equal(t, []string{"session.commit", "index", "unindex", "enqueue"}, journal)
	})

	t.Run("Side effects are skipped on rollback", func(t *testing.T) {
		session := newOpenSession(t)
		session.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		indexer := indexingmocks.NewMockIndexer(t)
		dispatcher := tasksmocks.NewMockDispatcher(t)

		u := newUnitOfWork(t, session)
		registerAll(t, u,
			uow.NewIndexOp(indexer, indexing.Document{Index: "records", ID: "r1"}),
			uow.NewTaskOp(dispatcher, tasks.Task{Name: "record.created"}))

		require.NoError(t, u.Rollback(ctx, nil))
	})

	t.Run("Cleanup stages a marker and the unit commits it", func(t *testing.T) {
		var journal []string
		cause := errors.New("quota exceeded")
		marker := &widget{Name: "cleanup"}

		session := newOpenSession(t)
		session.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		session.EXPECT().BeginNested(mock.Anything).Return(nil).Once()
		session.EXPECT().Add(marker).Run(func(any) {
			journal = append(journal, "stage")
		}).Return().Once()
		session.EXPECT().Commit(mock.Anything).RunAndReturn(func(context.Context) error {
			journal = append(journal, "session.commit")
			return nil
		}).Once()

		u := newUnitOfWork(t, session)
		registerAll(t, u, uow.NewCleanupOp(func(err error) any {
			assert.Same(t, cause, err)
			return marker
		}))

		assert.Same(t, cause, u.Exit(ctx, cause))
		assert.Equal(t, []string{"stage", "session.commit"}, journal)
	})

	t.Run("Cleanup building nothing stages nothing", func(t *testing.T) {
		session := newOpenSession(t)
		session.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		session.EXPECT().BeginNested(mock.Anything).Return(nil).Once()
		session.EXPECT().Commit(mock.Anything).Return(nil).Once()

		u := newUnitOfWork(t, session)
		registerAll(t, u, uow.NewCleanupOp(func(error) any { return nil }))

		assert.Error(t, u.Exit(ctx, errors.New("boom")))
		session.AssertNotCalled(t, "Add", mock.Anything)
	})

	t.Run("Operation names", func(t *testing.T) {
		assert.Equal(t, "model_commit", uow.NewModelCommitOp(1).Name())
		assert.Equal(t, "model_delete", uow.NewModelDeleteOp(1).Name())
		assert.Equal(t, "index", uow.NewIndexOp(nil, indexing.Document{}).Name())
		assert.Equal(t, "index_delete", uow.NewIndexDeleteOp(nil, "", "").Name())
		assert.Equal(t, "task:mail", uow.NewTaskOp(nil, tasks.Task{Name: "mail"}).Name())
		assert.Equal(t, "cleanup", uow.NewCleanupOp(nil).Name())
	})
}
