package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRecord       = 4001
	CodeDuplicateRecord     = 4004
	CodeConstraintViolation = 4005
	CodeRecordNotFound      = 4040
	CodeConcurrentUpdate    = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Unit of work programming errors
var (
	// ErrAlreadyResolved is returned when a unit of work is committed or rolled back twice
	ErrAlreadyResolved = errors.New("the unit of work is already committed or rolled back")

	// ErrNilSession is returned when a unit of work cannot find a session to bind to
	ErrNilSession = errors.New("no transactional session available for the unit of work")

	// ErrNilOperation is returned when a nil operation is registered
	ErrNilOperation = errors.New("operation cannot be nil")

	// ErrNilModel is returned when a model operation carries no model
	ErrNilModel = errors.New("operation model cannot be nil")
)

// Persistence and domain errors
var (
	// ErrInvalidRecord is returned when record data fails validation
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRecordNotFound is returned when the requested record doesn't exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateRecord is returned when a record with the same key already exists
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrConcurrentUpdate is returned when a row is locked or a serialization failure occurs
	ErrConcurrentUpdate = errors.New("record was modified by a concurrent transaction")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrUnsupportedDriver is returned for database drivers the layer cannot drive
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// Side effect errors
var (
	// ErrUnknownTask is returned when a task has no registered handler
	ErrUnknownTask = errors.New("no handler registered for task")

	// ErrDispatcherClosed is returned when a task is enqueued after shutdown
	ErrDispatcherClosed = errors.New("task dispatcher is shut down")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRecord):
		return CodeInvalidRecord
	case errors.Is(err, ErrDuplicateRecord):
		return CodeDuplicateRecord
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HookError is returned when an operation hook fails while a unit of work is
// registering or resolving. The remaining hooks of that phase are not run.
type HookError struct {
	Phase        string
	Operation    string
	UnitOfWorkID string
	Err          error
}

// Error implements the error interface for HookError
func (e *HookError) Error() string {
	return fmt.Sprintf("unit of work %s: %s hook of %s failed: %v",
		e.UnitOfWorkID, e.Phase, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *HookError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *HookError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "hook_error",
		"phase":        e.Phase,
		"operation":    e.Operation,
		"unit_of_work": e.UnitOfWorkID,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewHookError creates a new hook error
func NewHookError(phase, operation, unitOfWorkID string, err error) error {
	return &HookError{
		Phase:        phase,
		Operation:    operation,
		UnitOfWorkID: unitOfWorkID,
		Err:          err,
	}
}

// PanicError carries a recovered panic value through the rollback path
type PanicError struct {
	Value any
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in unit of work scope: %v", e.Value)
}

// Unwrap returns the panic value when it is an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RecordError represents an error related to a record operation
type RecordError struct {
	RecordID  string
	Operation string
	Err       error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s record %s: %v", e.Operation, e.RecordID, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_error",
		"record_id":  e.RecordID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRecordError creates a detailed record error
func NewRecordError(recordID, operation string, err error) error {
	return &RecordError{
		RecordID:  recordID,
		Operation: operation,
		Err:       err,
	}
}

// IsAlreadyResolvedError checks if the error comes from resolving a unit of work twice
func IsAlreadyResolvedError(err error) bool {
	return errors.Is(err, ErrAlreadyResolved)
}

// IsHookError checks if the error was raised by an operation hook
func IsHookError(err error) bool {
	var hookErr *HookError
	return errors.As(err, &hookErr)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}
