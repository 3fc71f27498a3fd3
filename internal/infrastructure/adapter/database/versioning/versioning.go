// Package versioning keeps an audit trail of versioned rows through gorm callbacks.
package versioning

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

// Versioned is implemented by models whose writes are captured in the audit trail
type Versioned interface {
	VersionKey() string
}

// Entry is a version row joined with the audit transaction that wrote it
type Entry struct {
	model.RecordVersion
	RemoteAddr string
	IssuedAt   *time.Time
}

type (
	transactionIDKey struct{}
	remoteAddrKey    struct{}
)

// ContextWithRemoteAddr attaches the client address stored on audit transactions
func ContextWithRemoteAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, remoteAddrKey{}, addr)
}

// RemoteAddrFromContext returns the client address attached to ctx, if any
func RemoteAddrFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(remoteAddrKey{}).(string)
	return addr
}

// TransactionIDFromContext returns the audit transaction id attached to ctx, if any
func TransactionIDFromContext(ctx context.Context) *int64 {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(transactionIDKey{}).(int64); ok {
		return &id
	}
	return nil
}

// Manager writes record versions and audit transactions
type Manager struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewManager creates a new versioning manager
func NewManager(timeProvider coreport.TimeProvider, logger coreport.Logger) *Manager {
	return &Manager{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register installs the versioning callbacks on db
func (m *Manager) Register(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().After("gorm:create").
		Register("versioning:after_create", m.afterWrite(entity.VersionInsert)); err != nil {
		return fmt.Errorf("register create callback: %w", err)
	}
	if err := cb.Update().After("gorm:update").
		Register("versioning:after_update", m.afterWrite(entity.VersionUpdate)); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	if err := cb.Delete().After("gorm:delete").
		Register("versioning:after_delete", m.afterWrite(entity.VersionDelete)); err != nil {
		return fmt.Errorf("register delete callback: %w", err)
	}

	m.logger.Info("Row versioning enabled", nil)
	return nil
}

// BeginTransaction inserts an audit transaction and returns a context carrying its id
func (m *Manager) BeginTransaction(ctx context.Context, tx *gorm.DB) (context.Context, error) {
	audit := &model.AuditTransaction{
		IssuedAt:   m.timeProvider.Now(),
		RemoteAddr: RemoteAddrFromContext(ctx),
	}
	if err := tx.Create(audit).Error; err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, transactionIDKey{}, audit.ID), nil
}

// Versions lists the history of one row, oldest first
func Versions(ctx context.Context, db *gorm.DB, table, key string) ([]Entry, error) {
	var entries []Entry
	err := db.WithContext(ctx).
		Table("record_versions AS v").
		Select("v.*, t.remote_addr, t.issued_at").
		Joins("LEFT JOIN audit_transactions t ON t.id = v.transaction_id").
		Where("v.record_table = ? AND v.record_key = ?", table, key).
		Order("v.version ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Restore decodes the snapshot of a version into dest
func Restore(version model.RecordVersion, dest any) error {
	if err := json.Unmarshal([]byte(version.Snapshot), dest); err != nil {
		return fmt.Errorf("restore version %d of %s/%s: %w",
			version.Version, version.RecordTable, version.RecordKey, err)
	}
	return nil
}

func (m *Manager) afterWrite(op entity.VersionOperation) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.RowsAffected == 0 || db.Statement.Schema == nil {
			return
		}

		rv := reflect.Indirect(db.Statement.ReflectValue)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				m.write(db, op, reflect.Indirect(rv.Index(i)).Interface())
			}
		case reflect.Struct:
			m.write(db, op, rv.Interface())
		}
	}
}

func (m *Manager) write(db *gorm.DB, op entity.VersionOperation, value any) {
	v, ok := value.(Versioned)
	if !ok {
		return
	}

	snapshot, err := json.Marshal(value)
	if err != nil {
		_ = db.AddError(fmt.Errorf("snapshot %s: %w", db.Statement.Table, err))
		return
	}

	tx := db.Session(&gorm.Session{NewDB: true})
	table := db.Statement.Table
	key := v.VersionKey()

	var current int
	err = tx.Model(&model.RecordVersion{}).
		Select("COALESCE(MAX(version), 0)").
		Where("record_table = ? AND record_key = ?", table, key).
		Scan(&current).Error
	if err != nil {
		_ = db.AddError(fmt.Errorf("read version of %s/%s: %w", table, key, err))
		return
	}

	version := &model.RecordVersion{
		RecordTable:   table,
		RecordKey:     key,
		Version:       current + 1,
		Operation:     string(op),
		Snapshot:      string(snapshot),
		TransactionID: TransactionIDFromContext(db.Statement.Context),
		CreatedAt:     m.timeProvider.Now(),
	}
	if err := tx.Create(version).Error; err != nil {
		_ = db.AddError(fmt.Errorf("write version of %s/%s: %w", table, key, err))
		return
	}

	m.logger.Debug("Record version written", map[string]any{
		"table":     table,
		"key":       key,
		"version":   version.Version,
		"operation": version.Operation,
	})
}
