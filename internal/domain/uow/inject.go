package uow

import (
	"context"
)

// Run calls fn with u when u is not nil and leaves commit and rollback to the
// owner of u. Otherwise it creates a unit of work from the factory, runs fn in
// its scope and commits it, rolling back if fn or the commit fails.
func Run[T any](ctx context.Context, factory *Factory, u *UnitOfWork, fn func(ctx context.Context, u *UnitOfWork) (T, error)) (T, error) {
	if u != nil {
		return fn(ctx, u)
	}

	var result T
	u, err := factory.New(ctx)
	if err != nil {
		return result, err
	}

	err = u.Do(ctx, func(ctx context.Context) error {
		res, err := fn(ctx, u)
		if err != nil {
			return err
		}
		if err := u.Commit(ctx); err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// RunInContext is Run with the unit of work taken from ctx, if any
func RunInContext[T any](ctx context.Context, factory *Factory, fn func(ctx context.Context, u *UnitOfWork) (T, error)) (T, error) {
	return Run[T](ctx, factory, FromContext(ctx), fn)
}

// Wrap turns fn into a function that accepts an optional unit of work.
// Calls with a nil unit of work commit on their own; calls with one join it.
func Wrap[A, T any](factory *Factory, fn func(ctx context.Context, arg A, u *UnitOfWork) (T, error)) func(ctx context.Context, arg A, u *UnitOfWork) (T, error) {
	return func(ctx context.Context, arg A, u *UnitOfWork) (T, error) {
		return Run[T](ctx, factory, u, func(ctx context.Context, u *UnitOfWork) (T, error) {
			return fn(ctx, arg, u)
		})
	}
}
