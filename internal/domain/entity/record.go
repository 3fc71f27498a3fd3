package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
)

// MaxTitleLength is the longest title a record may carry
const MaxTitleLength = 255

// Record is the example aggregate persisted through units of work
type Record struct {
	ID        string    // Unique identifier for the record
	Title     string    // Human readable title, required
	Body      string    // Free-form content
	Revision  int       // Incremented on every update, starts at 1
	CreatedAt time.Time // When the record was created
	UpdatedAt time.Time // When the record was last updated
}

// NewRecord creates a new record at revision 1
func NewRecord(id, title, body string, timeProvider coreport.TimeProvider) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRecord
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Record{
		ID:        id,
		Title:     title,
		Body:      body,
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the record content and bumps the revision
func (r *Record) Update(title, body string, timeProvider coreport.TimeProvider) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	r.Title = title
	r.Body = body
	r.Revision++
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// Document returns the searchable projection of the record
func (r *Record) Document() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"title":      r.Title,
		"body":       r.Body,
		"revision":   r.Revision,
		"updated_at": r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > MaxTitleLength {
		return errs.ErrInvalidRecord
	}
	return nil
}

// VersionOperation is the kind of change captured by a record version
type VersionOperation string

const (
	VersionInsert VersionOperation = "insert"
	VersionUpdate VersionOperation = "update"
	VersionDelete VersionOperation = "delete"
)

// RecordVersion is one historical state of a record in the audit trail
type RecordVersion struct {
	RecordID      string
	Version       int
	Operation     VersionOperation
	Snapshot      map[string]any
	TransactionID int64
	RemoteAddr    string
	IssuedAt      time.Time
}

// CleanupMarker records that a failed unit of work left work to clean up
type CleanupMarker struct {
	ID        string
	RecordID  string
	Reason    string
	CreatedAt time.Time
}

// NewCleanupMarker builds a marker for the record from the error that aborted its unit of work
func NewCleanupMarker(id, recordID string, cause error, timeProvider coreport.TimeProvider) *CleanupMarker {
	reason := "unknown"
	if cause != nil {
		reason = cause.Error()
	}
	return &CleanupMarker{
		ID:        id,
		RecordID:  recordID,
		Reason:    reason,
		CreatedAt: timeProvider.Now(),
	}
}
