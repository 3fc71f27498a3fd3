package uow

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
)

// Exit is the scope exit guard. With a non-nil cause on an open unit of work it
// rolls back with that cause and marks the unit of work resolved even if the
// rollback failed. The cause is always returned, joined with the rollback error
// if there was one. A nil cause never commits: an open unit of work is only
// reported as left unresolved.
func (u *UnitOfWork) Exit(ctx context.Context, cause error) error {
	if cause == nil {
		if !u.resolved {
			u.observer.Unresolved()
			u.logger.Warn("Unit of work left unresolved", map[string]any{
				"unit_of_work": u.id,
				"operations":   len(u.operations),
			})
		}
		return nil
	}

	if u.resolved {
		u.logger.Warn("Error raised after unit of work was resolved", map[string]any{
			"unit_of_work": u.id,
			"error":        cause.Error(),
		})
		return cause
	}

	rbErr := u.Rollback(ctx, cause)
	u.resolved = true
	if rbErr != nil {
		return errors.Join(cause, rbErr)
	}
	return cause
}

// Do runs fn inside the scope of the unit of work. The context passed to fn
// carries the unit of work and its session. An error or panic from fn goes
// through Exit; a panic is re-raised after the rollback.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			_ = u.Exit(ctx, &errs.PanicError{Value: r})
			panic(r)
		}
	}()

	scoped := persistence.ContextWithSession(ContextWithUnitOfWork(ctx, u), u.session)
	return u.Exit(ctx, fn(scoped))
}

type unitOfWorkKey struct{}

// ContextWithUnitOfWork returns a copy of ctx carrying the unit of work
func ContextWithUnitOfWork(ctx context.Context, u *UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkKey{}, u)
}

// FromContext returns the unit of work carried by ctx, or nil
func FromContext(ctx context.Context) *UnitOfWork {
	u, _ := ctx.Value(unitOfWorkKey{}).(*UnitOfWork)
	return u
}
