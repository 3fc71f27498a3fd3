package dto

import "time"

// CreateRecordRequest represents the API request for creating a record
type CreateRecordRequest struct {
	ID    string `json:"id" binding:"omitempty,max=64"`
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body"`
}

// UpdateRecordRequest represents the API request for replacing a record's content
type UpdateRecordRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body"`
}

// BatchCreateRequest creates several records atomically
type BatchCreateRequest struct {
	Records []CreateRecordRequest `json:"records" binding:"required,min=1,max=100,dive"`
}

// RecordResponse represents a record in API responses
type RecordResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Revision  int       `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BatchCreateResponse lists the records created by a batch
type BatchCreateResponse struct {
	Records []RecordResponse `json:"records"`
}

// RecordVersionResponse is one entry of a record's history
type RecordVersionResponse struct {
	Version       int            `json:"version"`
	Operation     string         `json:"operation"`
	Snapshot      map[string]any `json:"snapshot"`
	TransactionID int64          `json:"transactionId,omitempty"`
	RemoteAddr    string         `json:"remoteAddr,omitempty"`
	IssuedAt      time.Time      `json:"issuedAt"`
}

// RecordVersionsResponse lists the history of a record, oldest first
type RecordVersionsResponse struct {
	RecordID string                  `json:"recordId"`
	Versions []RecordVersionResponse `json:"versions"`
}

// HealthResponse reports the state of the service dependencies
type HealthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Database DatabasePoolStats `json:"database"`
}

// DatabasePoolStats is the last connection pool sample
type DatabasePoolStats struct {
	OpenConnections int `json:"openConnections"`
	InUse           int `json:"inUse"`
	Idle            int `json:"idle"`
}
