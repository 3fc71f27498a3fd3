package persistence

import (
	"context"
)

// sessionKey is the context key under which the request-scoped session is stored
type sessionKey struct{}

// Session is the transactional session a unit of work borrows.
// Implementations stage changes with Add and Delete and make them durable on Commit.
type Session interface {
	// BeginNested opens a savepoint, starting the outer transaction if needed
	BeginNested(ctx context.Context) error

	// Commit flushes staged changes and releases the innermost savepoint,
	// committing the transaction once no savepoint is left
	Commit(ctx context.Context) error

	// Rollback discards staged changes and reverts to the innermost savepoint,
	// rolling back the transaction once no savepoint is left
	Rollback(ctx context.Context) error

	// Add stages a model for insert or update
	Add(model any)

	// Delete stages a model for deletion
	Delete(model any)
}

// ContextWithSession returns a copy of ctx carrying the session
func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session carried by ctx, if any
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(Session)
	return session, ok && session != nil
}
