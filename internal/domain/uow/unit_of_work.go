package uow

import (
	"context"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
)

// UnitOfWork groups operations into one transaction on a borrowed session and
// drives their hooks around the commit or rollback. It is resolved at most once
// and must not be shared between goroutines.
//
// Leaving a scope with an error rolls back automatically, but a normal exit
// never commits: callers must call Commit themselves.
type UnitOfWork struct {
	id         string
	session    persistence.Session
	operations []Operation
	resolved   bool
	// committed is set once the session commit succeeded, even if a commit
	// hook failed afterwards
	committed bool
	startedAt  time.Time

	logger   core.Logger
	observer Observer
	now      func() time.Time
}

// New binds a unit of work to the session and opens its savepoint
func New(ctx context.Context, session persistence.Session, opts ...Option) (*UnitOfWork, error) {
	if session == nil {
		return nil, errs.ErrNilSession
	}

	o := buildOptions(opts)
	u := &UnitOfWork{
		id:       uuid.NewString(),
		session:  session,
		logger:   o.logger,
		observer: o.observer,
		now:      o.now,
	}

	if err := session.BeginNested(ctx); err != nil {
		u.logger.Error("Failed to begin unit of work", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
		return nil, err
	}

	u.startedAt = u.now()
	u.observer.Started()
	u.logger.Debug("Unit of work started", map[string]any{"unit_of_work": u.id})
	return u, nil
}

// ID returns the identifier used to correlate log lines of this unit of work
func (u *UnitOfWork) ID() string {
	return u.id
}

// Session returns the session the unit of work is bound to
func (u *UnitOfWork) Session() persistence.Session {
	return u.session
}

// Resolved reports whether the unit of work was committed or rolled back
func (u *UnitOfWork) Resolved() bool {
	return u.resolved
}

// Operations returns the registered operations in registration order
func (u *UnitOfWork) Operations() []Operation {
	ops := make([]Operation, len(u.operations))
	copy(ops, u.operations)
	return ops
}

// Register runs the operation's OnRegister hook and records the operation.
// The same operation may be registered more than once.
func (u *UnitOfWork) Register(ctx context.Context, op Operation) error {
	if u.resolved {
		return errs.ErrAlreadyResolved
	}
	if op == nil {
		return errs.ErrNilOperation
	}

	if err := op.OnRegister(ctx, u); err != nil {
		return u.hookFailed(PhaseRegister, op, err)
	}
	u.operations = append(u.operations, op)
	return nil
}

// Commit commits the session, then runs OnCommit and OnPostCommit on every
// operation, and only then marks the unit of work resolved. A failed session
// commit is returned unchanged and leaves the unit of work open, so the caller
// can still roll back. A failed hook also leaves it open; the session is not
// committed a second time.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.resolved {
		return errs.ErrAlreadyResolved
	}

	if !u.committed {
		if err := u.session.Commit(ctx); err != nil {
			u.logger.Error("Failed to commit unit of work", map[string]any{
				"unit_of_work": u.id,
				"operations":   len(u.operations),
				"error":        err.Error(),
			})
			return err
		}
		u.committed = true
		u.observer.Committed(core.Duration(u.now().Sub(u.startedAt)))
		u.logger.Debug("Unit of work committed", map[string]any{
			"unit_of_work": u.id,
			"operations":   len(u.operations),
		})
	}

	if err := u.runPhase(PhaseCommit, func(op Operation) error {
		return op.OnCommit(ctx, u)
	}); err != nil {
		return err
	}
	if err := u.runPhase(PhasePostCommit, func(op Operation) error {
		return op.OnPostCommit(ctx, u)
	}); err != nil {
		return err
	}

	u.resolved = true
	return nil
}

// Rollback rolls back the session and runs the rollback hooks. A nil cause is
// an explicit rollback. A non-nil cause first runs OnException on every
// operation inside a fresh savepoint and commits only that savepoint, so
// compensating writes never release work of an enclosing unit of work.
// When the session was already committed there is nothing left to revert and
// only the hooks run.
func (u *UnitOfWork) Rollback(ctx context.Context, cause error) error {
	if u.resolved {
		return errs.ErrAlreadyResolved
	}

	if !u.committed {
		if err := u.session.Rollback(ctx); err != nil {
			u.logger.Error("Failed to roll back unit of work", map[string]any{
				"unit_of_work": u.id,
				"error":        err.Error(),
			})
			return err
		}
	}
	u.resolved = true
	u.observer.RolledBack(cause != nil)

	fields := map[string]any{
		"unit_of_work": u.id,
		"operations":   len(u.operations),
	}
	if cause != nil {
		fields["cause"] = cause.Error()
	}
	u.logger.Debug("Unit of work rolled back", fields)

	if cause != nil {
		if err := u.compensate(ctx, cause); err != nil {
			return err
		}
	}

	if err := u.runPhase(PhaseRollback, func(op Operation) error {
		return op.OnRollback(ctx, u)
	}); err != nil {
		return err
	}
	return u.runPhase(PhasePostRollback, func(op Operation) error {
		return op.OnPostRollback(ctx, u)
	})
}

// compensate runs OnException in its own savepoint and commits it
func (u *UnitOfWork) compensate(ctx context.Context, cause error) error {
	if err := u.session.BeginNested(ctx); err != nil {
		u.logger.Error("Failed to begin compensating writes", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
		return err
	}

	if err := u.runPhase(PhaseException, func(op Operation) error {
		return op.OnException(ctx, u, cause)
	}); err != nil {
		if rbErr := u.session.Rollback(ctx); rbErr != nil {
			u.logger.Error("Failed to discard compensating writes", map[string]any{
				"unit_of_work": u.id,
				"error":        rbErr.Error(),
			})
		}
		return err
	}

	if err := u.session.Commit(ctx); err != nil {
		u.logger.Error("Failed to commit compensating writes", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
		return err
	}
	return nil
}

func (u *UnitOfWork) runPhase(phase Phase, hook func(Operation) error) error {
	for _, op := range u.operations {
		if err := hook(op); err != nil {
			return u.hookFailed(phase, op, err)
		}
	}
	return nil
}

func (u *UnitOfWork) hookFailed(phase Phase, op Operation, err error) error {
	hookErr := &errs.HookError{
		Phase:        string(phase),
		Operation:    operationName(op),
		UnitOfWorkID: u.id,
		Err:          err,
	}
	u.observer.HookFailed(phase)
	u.logger.Error("Unit of work hook failed", hookErr.LogFields())
	return hookErr
}
