package model

import (
	"time"
)

// Record represents the database model for records
type Record struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text;not null;default:''" json:"body"`
	Revision  int       `gorm:"not null;default:1" json:"revision"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Record
func (Record) TableName() string {
	return "records"
}

// VersionKey identifies the row in the audit trail
func (r Record) VersionKey() string {
	return r.ID
}
