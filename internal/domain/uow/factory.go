package uow

import (
	"context"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
)

// Factory creates units of work with shared options
type Factory struct {
	session persistence.Session
	opts    []Option
}

// NewFactory creates a factory. session is used only when the context passed
// to New carries no session of its own and may be nil.
func NewFactory(session persistence.Session, opts ...Option) *Factory {
	return &Factory{session: session, opts: opts}
}

// New creates a unit of work bound to the session carried by ctx, or to the
// factory session when ctx has none
func (f *Factory) New(ctx context.Context) (*UnitOfWork, error) {
	session := f.session
	if s, ok := persistence.SessionFromContext(ctx); ok {
		session = s
	}
	return New(ctx, session, f.opts...)
}
