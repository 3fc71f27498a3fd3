package model

import (
	"time"
)

// AuditTransaction groups the record versions written by one flush
type AuditTransaction struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	IssuedAt   time.Time `gorm:"not null"`
	RemoteAddr string    `gorm:"type:varchar(50)"`
}

// TableName specifies the table name for AuditTransaction
func (AuditTransaction) TableName() string {
	return "audit_transactions"
}

// RecordVersion is one historical state of a versioned row
type RecordVersion struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	RecordTable   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_record_versions_key,priority:1"`
	RecordKey     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_record_versions_key,priority:2"`
	Version       int       `gorm:"not null;uniqueIndex:idx_record_versions_key,priority:3"`
	Operation     string    `gorm:"type:varchar(10);not null"`
	Snapshot      string    `gorm:"type:text;not null"`
	TransactionID *int64    `gorm:"index:idx_record_versions_transaction_id"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for RecordVersion
func (RecordVersion) TableName() string {
	return "record_versions"
}

// All returns every model managed by the schema manager, in creation order
func All() []any {
	return []any{
		&Record{},
		&CleanupMarker{},
		&AuditTransaction{},
		&RecordVersion{},
	}
}
