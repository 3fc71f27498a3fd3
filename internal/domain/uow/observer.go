package uow

import (
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
)

// Observer receives lifecycle events of units of work, typically to record metrics
type Observer interface {
	// Started is called once the savepoint of a new unit of work is open
	Started()
	// Committed is called after the session commit with the lifetime of the unit of work
	Committed(elapsed core.Duration)
	// RolledBack is called after the session rollback; withCause reports an error-triggered rollback
	RolledBack(withCause bool)
	// HookFailed is called when an operation hook returns an error
	HookFailed(phase Phase)
	// Unresolved is called when a scope is left normally without commit or rollback
	Unresolved()
}

type noopObserver struct{}

func (noopObserver) Started()                {}
func (noopObserver) Committed(core.Duration) {}
func (noopObserver) RolledBack(bool)         {}
func (noopObserver) HookFailed(Phase)        {}
func (noopObserver) Unresolved()             {}

type noopLogger struct{}

func (noopLogger) SetLevel(core.LogLevel)       {}
func (noopLogger) GetLevel() core.LogLevel      { return core.LogLevelInfo }
func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Info(string, map[string]any)  {}
func (noopLogger) Warn(string, map[string]any)  {}
func (noopLogger) Error(string, map[string]any) {}
func (noopLogger) Flush() error                 { return nil }
