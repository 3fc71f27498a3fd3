package model

import (
	"time"
)

// CleanupMarker is written by the compensating commit of a failed unit of work
type CleanupMarker struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	RecordID  string    `gorm:"type:varchar(64);not null;index:idx_cleanup_markers_record_id"`
	Reason    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CleanupMarker
func (CleanupMarker) TableName() string {
	return "cleanup_markers"
}
