package uow

import (
	"context"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/tasks"
)

// IndexOp indexes a document once the data it describes is durable
type IndexOp struct {
	BaseOperation
	indexer indexing.Indexer
	doc     indexing.Document
}

// NewIndexOp creates an indexing operation
func NewIndexOp(indexer indexing.Indexer, doc indexing.Document) *IndexOp {
	return &IndexOp{indexer: indexer, doc: doc}
}

// OnCommit writes the document to the index
func (op *IndexOp) OnCommit(ctx context.Context, _ *UnitOfWork) error {
	return op.indexer.Index(ctx, op.doc)
}

// Name returns the operation name
func (op *IndexOp) Name() string {
	return "index"
}

// IndexDeleteOp removes a document from the index once its deletion is durable
type IndexDeleteOp struct {
	BaseOperation
	indexer indexing.Indexer
	index   string
	id      string
}

// NewIndexDeleteOp creates an index removal operation
func NewIndexDeleteOp(indexer indexing.Indexer, index, id string) *IndexDeleteOp {
	return &IndexDeleteOp{indexer: indexer, index: index, id: id}
}

// OnCommit removes the document from the index
func (op *IndexDeleteOp) OnCommit(ctx context.Context, _ *UnitOfWork) error {
	return op.indexer.Delete(ctx, op.index, op.id)
}

// Name returns the operation name
func (op *IndexDeleteOp) Name() string {
	return "index_delete"
}

// TaskOp enqueues a background task after every commit hook has run
type TaskOp struct {
	BaseOperation
	dispatcher tasks.Dispatcher
	task       tasks.Task
}

// NewTaskOp creates a task dispatch operation
func NewTaskOp(dispatcher tasks.Dispatcher, task tasks.Task) *TaskOp {
	return &TaskOp{dispatcher: dispatcher, task: task}
}

// OnPostCommit hands the task to the dispatcher
func (op *TaskOp) OnPostCommit(ctx context.Context, _ *UnitOfWork) error {
	return op.dispatcher.Enqueue(ctx, op.task)
}

// Name returns the operation name
func (op *TaskOp) Name() string {
	return "task:" + op.task.Name
}

// CleanupOp stages a compensating model when the unit of work fails with an error.
// The unit of work commits it after the rollback, so it survives the failure.
type CleanupOp struct {
	BaseOperation
	build func(cause error) any
}

// NewCleanupOp creates a cleanup operation. build may return nil to stage nothing.
func NewCleanupOp(build func(cause error) any) *CleanupOp {
	return &CleanupOp{build: build}
}

// OnException stages the compensating model built from the cause
func (op *CleanupOp) OnException(_ context.Context, u *UnitOfWork, cause error) error {
	if model := op.build(cause); model != nil {
		u.Session().Add(model)
	}
	return nil
}

// Name returns the operation name
func (op *CleanupOp) Name() string {
	return "cleanup"
}
