package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
)

// ErrorMapper maps database errors to domain errors.
// Mapped errors wrap both the domain sentinel and the driver error.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// Classify returns the type of a database error, or an empty string when unknown
func (m *ErrorMapper) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DuplicateKeyError
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return ConstraintError
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry"):
		return DuplicateKeyError

	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock wait timeout") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "database is locked"):
		return LockError

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "not null constraint"):
		return ConstraintError

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "bad connection") ||
		strings.Contains(errMsg, "database is closed"):
		return ConnectionError

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "eof"):
		return TransientError
	}

	return ""
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch m.Classify(err) {
	case NotFoundError:
		sentinel = domainErr.ErrNotFound
	case DuplicateKeyError:
		sentinel = domainErr.ErrDuplicateRecord
	case LockError:
		sentinel = domainErr.ErrConcurrentUpdate
	case ConstraintError:
		sentinel = domainErr.ErrConstraintViolation
	case ConnectionError, TransientError:
		sentinel = domainErr.ErrDatabaseConnection
	default:
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s: %w", operation, err)
		}
		sentinel = domainErr.ErrInternalServer
	}

	return fmt.Errorf("%s: %w: %w", operation, sentinel, err)
}

// MapRecordNotFoundError maps a lookup error, turning a missing row into ErrRecordNotFound
func (m *ErrorMapper) MapRecordNotFoundError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrRecordNotFound
	}
	return m.MapError(err, "get record")
}

// IsTransient reports whether retrying the failed statement may succeed
func (m *ErrorMapper) IsTransient(err error) bool {
	switch m.Classify(err) {
	case TransientError, ConnectionError, LockError:
		return true
	default:
		return false
	}
}
