package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
)

func TestErrorMapper_Classify(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"gorm not found", gorm.ErrRecordNotFound, NotFoundError},
		{"translated duplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"translated foreign key", gorm.ErrForeignKeyViolated, ConstraintError},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "records_pkey"`), DuplicateKeyError},
		{"sqlite unique", errors.New("UNIQUE constraint failed: records.id"), DuplicateKeyError},
		{"mysql duplicate", errors.New("Error 1062: Duplicate entry 'r1' for key 'PRIMARY'"), DuplicateKeyError},
		{"deadlock", errors.New("ERROR: deadlock detected"), LockError},
		{"sqlite busy", errors.New("database is locked"), LockError},
		{"not null", errors.New("NOT NULL constraint failed: records.title"), ConstraintError},
		{"refused", errors.New("dial tcp: connection refused"), ConnectionError},
		{"eof", errors.New("unexpected EOF"), TransientError},
		{"unknown", errors.New("syntax error at or near"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Classify(tt.err))
		})
	}
}

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	t.Run("Nil stays nil", func(t *testing.T) {
		assert.NoError(t, m.MapError(nil, "op"))
	})

	t.Run("Both the sentinel and the driver error are reachable", func(t *testing.T) {
		driverErr := errors.New("UNIQUE constraint failed: records.id")

		err := m.MapError(driverErr, "flush create")

		assert.ErrorIs(t, err, domainErr.ErrDuplicateRecord)
		assert.ErrorIs(t, err, driverErr)
		assert.Contains(t, err.Error(), "flush create")
	})

	t.Run("Lock errors map to concurrent update", func(t *testing.T) {
		err := m.MapError(errors.New("deadlock detected"), "commit transaction")
		assert.ErrorIs(t, err, domainErr.ErrConcurrentUpdate)
	})

	t.Run("Context errors are not classified as server errors", func(t *testing.T) {
		err := m.MapError(fmt.Errorf("query: %w", context.Canceled), "get record")

		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domainErr.ErrInternalServer)
	})

	t.Run("Unknown errors map to internal server error", func(t *testing.T) {
		err := m.MapError(errors.New("syntax error"), "query")
		assert.ErrorIs(t, err, domainErr.ErrInternalServer)
	})
}

func TestErrorMapper_MapRecordNotFoundError(t *testing.T) {
	m := NewErrorMapper()

	assert.NoError(t, m.MapRecordNotFoundError(nil))
	assert.Equal(t, domainErr.ErrRecordNotFound, m.MapRecordNotFoundError(gorm.ErrRecordNotFound))
	assert.ErrorIs(t, m.MapRecordNotFoundError(errors.New("connection reset by peer")), domainErr.ErrDatabaseConnection)
}

func TestErrorMapper_IsTransient(t *testing.T) {
	m := NewErrorMapper()

	assert.True(t, m.IsTransient(errors.New("connection reset by peer")))
	assert.True(t, m.IsTransient(errors.New("deadlock detected")))
	assert.False(t, m.IsTransient(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, m.IsTransient(gorm.ErrRecordNotFound))
	assert.False(t, m.IsTransient(nil))
}
