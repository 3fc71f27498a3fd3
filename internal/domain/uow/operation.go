package uow

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
)

// Phase names a step of the unit of work lifecycle in which hooks run
type Phase string

const (
	PhaseRegister     Phase = "register"
	PhaseCommit       Phase = "commit"
	PhasePostCommit   Phase = "post_commit"
	PhaseException    Phase = "exception"
	PhaseRollback     Phase = "rollback"
	PhasePostRollback Phase = "post_rollback"
)

// Operation is deferred work attached to a unit of work.
// Each hook runs at most once, on the goroutine that resolves the unit of work.
type Operation interface {
	// OnRegister runs synchronously inside Register, before the operation is recorded
	OnRegister(ctx context.Context, u *UnitOfWork) error

	// OnCommit runs after the session committed
	OnCommit(ctx context.Context, u *UnitOfWork) error

	// OnPostCommit runs after every operation's OnCommit
	OnPostCommit(ctx context.Context, u *UnitOfWork) error

	// OnException runs when the rollback was triggered by an error.
	// Writes staged here are committed by the unit of work afterwards.
	OnException(ctx context.Context, u *UnitOfWork, cause error) error

	// OnRollback runs after the session rollback
	OnRollback(ctx context.Context, u *UnitOfWork) error

	// OnPostRollback runs after every operation's OnRollback
	OnPostRollback(ctx context.Context, u *UnitOfWork) error
}

// BaseOperation implements every hook as a no-op. Embed it and override what you need.
type BaseOperation struct{}

func (BaseOperation) OnRegister(context.Context, *UnitOfWork) error         { return nil }
func (BaseOperation) OnCommit(context.Context, *UnitOfWork) error           { return nil }
func (BaseOperation) OnPostCommit(context.Context, *UnitOfWork) error       { return nil }
func (BaseOperation) OnException(context.Context, *UnitOfWork, error) error { return nil }
func (BaseOperation) OnRollback(context.Context, *UnitOfWork) error         { return nil }
func (BaseOperation) OnPostRollback(context.Context, *UnitOfWork) error     { return nil }

// Named is implemented by operations that want a readable name in logs and errors
type Named interface {
	Name() string
}

func operationName(op Operation) string {
	if n, ok := op.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", op)
}

// ModelCommitOp stages a model for insert or update when registered
type ModelCommitOp struct {
	BaseOperation
	Model any
}

// NewModelCommitOp creates a commit operation for the model
func NewModelCommitOp(model any) *ModelCommitOp {
	return &ModelCommitOp{Model: model}
}

// OnRegister adds the model to the session
func (op *ModelCommitOp) OnRegister(_ context.Context, u *UnitOfWork) error {
	if op.Model == nil {
		return errs.ErrNilModel
	}
	u.Session().Add(op.Model)
	return nil
}

// Name returns the operation name
func (op *ModelCommitOp) Name() string {
	return "model_commit"
}

// ModelDeleteOp marks a model for deletion when registered
type ModelDeleteOp struct {
	BaseOperation
	Model any
}

// NewModelDeleteOp creates a delete operation for the model
func NewModelDeleteOp(model any) *ModelDeleteOp {
	return &ModelDeleteOp{Model: model}
}

// OnRegister marks the model as deleted in the session
func (op *ModelDeleteOp) OnRegister(_ context.Context, u *UnitOfWork) error {
	if op.Model == nil {
		return errs.ErrNilModel
	}
	u.Session().Delete(op.Model)
	return nil
}

// Name returns the operation name
func (op *ModelDeleteOp) Name() string {
	return "model_delete"
}
